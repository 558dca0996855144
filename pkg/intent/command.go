package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
)

const (
	registerPrefix = "DAFTAR#"
	invitePrefix   = "INVITE#"

	defaultName  = "User"
	nameMinChars = 3
	nameMaxChars = 50
)

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10,15}$`)
	categoryPattern = regexp.MustCompile(`(?is)^KATEGORI\s*:\s*(.*)$`)
	nonDigits       = regexp.MustCompile(`[^0-9]`)
)

type RegisterCommand struct {
	Name        string
	Role        string
	EnableText  bool
	EnableImage bool
	EnableVoice bool
}

type InviteCommand struct {
	PhoneNumber string
}

type CategoryCommand struct {
	Name string
}

// CommandError is a malformed command. Message is the reply for the user.
type CommandError struct {
	Kind    Kind
	Message string
}

func (e *CommandError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func invalid(kind Kind, message string) error {
	return errors.Mark(&CommandError{Kind: kind, Message: message}, common.ErrValidation)
}

// ParseCommand recognises typed commands. ok is false when text is not a command at all.
func ParseCommand(text string) (Intent, bool, error) {
	trimmed := strings.TrimSpace(text)
	upper := strings.ToUpper(trimmed)

	switch {
	case strings.HasPrefix(upper, registerPrefix):
		cmd, err := parseRegister(trimmed)
		if err != nil {
			return Intent{Kind: KindRegister}, true, err
		}

		return Intent{Kind: KindRegister, Confidence: 1, Register: cmd}, true, nil
	case strings.HasPrefix(upper, invitePrefix):
		cmd, err := parseInvite(trimmed)
		if err != nil {
			return Intent{Kind: KindInvite}, true, err
		}

		return Intent{Kind: KindInvite, Confidence: 1, Invite: cmd}, true, nil
	case strings.HasPrefix(upper, "KATEGORI"):
		match := categoryPattern.FindStringSubmatch(trimmed)
		if match == nil {
			return Intent{}, false, nil
		}

		name := strings.TrimSpace(match[1])
		if name == "" {
			return Intent{Kind: KindAddCategory}, true,
				invalid(KindAddCategory, "❌ Format salah. Gunakan: KATEGORI: nama_kategori")
		}

		return Intent{Kind: KindAddCategory, Confidence: 1, Category: &CategoryCommand{Name: name}}, true, nil
	default:
		return Intent{}, false, nil
	}
}

func parseRegister(text string) (*RegisterCommand, error) {
	parts := strings.Split(text, "#")
	if len(parts) > 4 {
		return nil, invalid(KindRegister, "❌ Format salah. Contoh: DAFTAR#Nama#role#fitur")
	}

	part := func(idx int) string {
		if idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}

		return ""
	}

	name := strings.Join(strings.Fields(part(1)), " ")
	if name == "" {
		name = defaultName
	}

	if l := utf8.RuneCountInString(name); l < nameMinChars || l > nameMaxChars {
		return nil, invalid(KindRegister, "❌ Nama harus antara 3-50 karakter")
	}

	cmd := &RegisterCommand{
		Name:       cases.Title(language.Indonesian).String(name),
		Role:       strings.ToLower(part(2)),
		EnableText: true,
	}

	if features := part(3); features != "" {
		requested := strings.FieldsFunc(strings.ToLower(features), func(r rune) bool {
			return r == ',' || r == ' ' || r == '+' || r == '|'
		})

		cmd.EnableText = lo.Contains(requested, "text")
		cmd.EnableImage = lo.Contains(requested, "image")
		cmd.EnableVoice = lo.Contains(requested, "voice")
	}

	return cmd, nil
}

func parseInvite(text string) (*InviteCommand, error) {
	parts := strings.SplitN(text, "#", 2)

	phone := ""
	if len(parts) == 2 {
		phone = nonDigits.ReplaceAllString(parts[1], "")
	}

	if phone == "" {
		return nil, invalid(KindInvite, "❌ Format invite salah. Contoh: INVITE#628xxxxxxx")
	}

	if !phonePattern.MatchString(phone) {
		return nil, invalid(KindInvite, "❌ Format nomor telepon tidak valid")
	}

	return &InviteCommand{PhoneNumber: phone}, nil
}

// UserMessage extracts the reply text of a command validation failure.
func UserMessage(err error) (string, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Message, true
	}

	return "", false
}
