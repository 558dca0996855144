package printer

const (
	MsgRegisterHint      = "❌ Nomor Anda belum terdaftar. Gunakan perintah DAFTAR# terlebih dahulu."
	MsgRegisterFormat    = "❌ Format salah. Contoh: DAFTAR#Nama#role#fitur"
	MsgAlreadyRegistered = "❌ Nomor Anda sudah terdaftar."
	MsgRegisterCheck     = "❌ Terjadi kesalahan saat cek pendaftaran."
	MsgRegisterFailed    = "❌ Gagal mendaftar. Coba lagi nanti."

	MsgInviterUnknown   = "❌ Anda belum terdaftar atau belum punya akun."
	MsgInviterNoAccount = "❌ Anda belum terdaftar."
	MsgInviteeExists    = "❌ Nomor tersebut sudah terdaftar."
	MsgInviteCheck      = "❌ Terjadi kesalahan saat cek nomor invite."
	MsgInviteFailed     = "❌ Gagal mengundang nomor. Coba lagi nanti."

	MsgCategoryFailed = "❌ Gagal menyimpan kategori. Coba lagi nanti."

	MsgFeatureDenied = "❌ Maaf, Anda tidak memiliki akses untuk fitur ini."
	MsgRateLimited   = "⏳ Terlalu banyak pesan. Mohon tunggu sebentar lalu coba lagi."
	MsgClarify       = "🤔 Maaf, saya belum paham maksud Anda. Coba tuliskan transaksi seperti \"beli kopi 20000\" " +
		"atau minta laporan seperti \"total pengeluaran bulan ini\"."
	MsgGenericFailure = "❌ Maaf, terjadi kesalahan saat memproses pesan Anda. Mohon coba lagi nanti."

	MsgNoTransactions   = "📭 Tidak ada transaksi yang ditemukan bulan ini."
	MsgNothingToDelete  = "⚠️ Tidak ada transaksi sebelumnya yang bisa dihapus."
	MsgDeleted          = "🗑️ Transaksi terakhir berhasil dihapus."
	MsgDeleteFailed     = "❌ Gagal menghapus transaksi terakhir."
	MsgPersistPending   = "⏳ Transaksi sedang diproses ulang dan akan tersimpan otomatis."
	MsgConsultFallback  = "Maaf, saya tidak bisa menjawab pertanyaan tersebut."
	MsgReportDenied     = "❌ Maaf, Anda tidak memiliki akses untuk melihat laporan keuangan."
	MsgReportNoPeriod   = "❌ Mohon tentukan periode waktu yang ingin dilihat (hari ini, minggu ini, bulan ini, atau bulan tertentu)."
	MsgReportUnknown    = "❌ Maaf, saya tidak mengerti permintaan laporan Anda. Silakan coba dengan format yang berbeda."
	MsgReportFailed     = "❌ Maaf, terjadi kesalahan saat memproses laporan. Mohon coba lagi nanti."
	MsgExtractionFailed = "❌ Maaf, transaksi tidak dapat dikenali. Mohon coba lagi dengan format yang lebih jelas."
)
