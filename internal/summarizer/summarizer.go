// Package summarizer turns scraped article text into short Spanish briefs.
package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deusflow/secdigest/internal/logger"
	"github.com/deusflow/secdigest/internal/metrics"
)

const (
	InsufficientContent = "[No se pudo obtener suficiente contenido para generar resumen]"
	EmptyCompletion     = "[El modelo no devolvió contenido para el resumen]"
	errorPrefix         = "[ERROR al generar brief: "

	DefaultMinChars    = 100
	DefaultTemperature = 0.7
)

const promptTemplate = `A continuación se presenta el texto extraído de un artículo de ciberseguridad titulado "%s". Proporciona un resumen conciso en español de no más de 100 palabras, destacando los puntos clave e impacto. Asegúrate de que el resumen sea directamente aplicable para evaluar riesgos de ciberseguridad:

%s`

// Completer issues a single prompt to a language model.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Factory builds a Completer bound to one credential.
type Factory func(ctx context.Context, apiKey string) (Completer, error)

type Summarizer struct {
	completer Completer
	minChars  int
}

func New(c Completer, minChars int) *Summarizer {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	return &Summarizer{completer: c, minChars: minChars}
}

// Brief always returns a displayable string; failures become placeholders.
func (s *Summarizer) Brief(ctx context.Context, url, title, content string) string {
	if utf8.RuneCountInString(content) < s.minChars {
		logger.Warn("insufficient content for brief", "url", url, "chars", utf8.RuneCountInString(content))
		metrics.Global.IncrementInsufficientContent()
		return InsufficientContent
	}

	logger.Info("requesting brief", "title", title)
	out, err := s.completer.Complete(ctx, BuildPrompt(title, content))
	if err != nil {
		logger.Error("brief generation failed", "url", url, "error", err)
		metrics.Global.IncrementFailedBriefs()
		return ErrorPlaceholder(err)
	}

	brief := strings.TrimSpace(out)
	if brief == "" {
		logger.Warn("empty completion", "url", url)
		metrics.Global.IncrementFailedBriefs()
		return EmptyCompletion
	}

	metrics.Global.IncrementSuccessfulBriefs()
	return brief
}

func BuildPrompt(title, content string) string {
	return fmt.Sprintf(promptTemplate, title, content)
}

// ErrorPlaceholder is shown to readers verbatim.
func ErrorPlaceholder(err error) string {
	return errorPrefix + err.Error() + "]"
}

// IsPlaceholder reports whether brief is one of the degraded-result strings.
func IsPlaceholder(brief string) bool {
	return brief == InsufficientContent || brief == EmptyCompletion || strings.HasPrefix(brief, errorPrefix)
}
