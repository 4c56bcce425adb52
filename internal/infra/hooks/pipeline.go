package hooks

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

// HookFunc может изменить payload или отклонить его ошибкой
type HookFunc func(ctx context.Context, payload *models.MessagePayload) (*models.MessagePayload, error)

// Pipeline - упорядоченный список хуков по имени события
type Pipeline struct {
	hooks map[string][]HookFunc
}

func NewPipeline() *Pipeline {
	return &Pipeline{hooks: make(map[string][]HookFunc)}
}

// Register добавляет хук в конец цепочки события. Регистрация - только при сборке приложения.
func (p *Pipeline) Register(event string, hook HookFunc) *Pipeline {
	p.hooks[event] = append(p.hooks[event], hook)
	return p
}

// Transform прогоняет копию payload через хуки события по порядку. Ошибка хука возвращается как есть.
func (p *Pipeline) Transform(ctx context.Context, event string, payload *models.MessagePayload) (*models.MessagePayload, error) {
	current := *payload
	out := &current

	for _, hook := range p.hooks[event] {
		next, err := hook(ctx, out)
		if err != nil {
			return nil, err
		}

		if next != nil {
			out = next
		}
	}

	return out, nil
}

// TrimContent убирает пробелы по краям и управляющие символы, кроме перевода строки
func TrimContent(_ context.Context, payload *models.MessagePayload) (*models.MessagePayload, error) {
	payload.Content = strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(payload.Content))

	return payload, nil
}

// RejectWords отклоняет сообщения, содержащие одно из слов (без учёта регистра)
func RejectWords(words ...string) HookFunc {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}

	return func(_ context.Context, payload *models.MessagePayload) (*models.MessagePayload, error) {
		content := strings.ToLower(payload.Content)
		for _, w := range lowered {
			if strings.Contains(content, w) {
				return nil, fmt.Errorf("%w: message contains a banned word", errs.ErrForbidden)
			}
		}

		return payload, nil
	}
}
