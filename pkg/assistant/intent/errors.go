package intent

import "errors"

// Falhas tratadas pelos handlers. Nenhuma chega ao usuário como erro: cada
// uma vira uma mensagem pronta.
var (
	ErrProviderUnavailable = errors.New("provider_unavailable")
	ErrNoMatchFound        = errors.New("no_match_found")
	ErrInvalidSymbol       = errors.New("invalid_symbol")
)

// reasonOf returns the failure name carried in ActionResult.Reason.
func reasonOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrProviderUnavailable):
		return ErrProviderUnavailable.Error()
	case errors.Is(err, ErrInvalidSymbol):
		return ErrInvalidSymbol.Error()
	case errors.Is(err, ErrNoMatchFound):
		return ErrNoMatchFound.Error()
	default:
		return ErrProviderUnavailable.Error()
	}
}
