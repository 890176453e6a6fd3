package utcdate

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"

	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/bornholm/pettymatters/internal/metrics"
	"github.com/pkg/errors"
)

// RendererResolver returns the renderer matching the viewer of a request.
type RendererResolver func(r *http.Request) localtime.Renderer

// Middleware localizes the marked timestamps of every HTML response. Whether
// a response is buffered is decided when its header is written; other
// responses are streamed to the client unchanged.
func Middleware(resolve RendererResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			writer := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(writer, r)

			if !writer.buffering {
				return
			}

			ctx := r.Context()
			body := writer.body.Bytes()

			if len(body) > 0 {
				var rewritten bytes.Buffer

				result, err := Rewrite(&rewritten, bytes.NewReader(body), resolve(r))
				if err != nil {
					slog.ErrorContext(ctx, "could not localize timestamps", slog.Any("error", errors.WithStack(err)))
				} else {
					body = rewritten.Bytes()

					metrics.LocalizedTimestamps.Add(float64(result.Total - result.Invalid))
					metrics.InvalidTimestamps.Add(float64(result.Invalid))
					metrics.SkippedTimestamps.Add(float64(result.Skipped))

					if result.Invalid > 0 || result.Skipped > 0 {
						slog.DebugContext(ctx, "some timestamps could not be rendered",
							slog.Int("invalid", result.Invalid),
							slog.Int("skipped", result.Skipped),
							slog.Int("total", result.Total),
						)
					}
				}
			}

			w.WriteHeader(writer.statusCode)

			if _, err := w.Write(body); err != nil {
				slog.ErrorContext(ctx, "could not write response", slog.Any("error", errors.WithStack(err)))
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	headerWrote bool
	buffering   bool
	body        bytes.Buffer
}

func (w *responseWriter) WriteHeader(status int) {
	if w.headerWrote {
		return
	}

	w.headerWrote = true
	w.statusCode = status
	w.buffering = isHTML(w.Header())

	if w.buffering {
		// The rewritten body has another length
		w.Header().Del("Content-Length")
		return
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(body []byte) (int, error) {
	if !w.headerWrote {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(body))
		}
		w.WriteHeader(http.StatusOK)
	}

	if w.buffering {
		return w.body.Write(body)
	}

	return w.ResponseWriter.Write(body)
}

// Flush forwards to the client when the response is not buffered.
func (w *responseWriter) Flush() {
	if w.buffering {
		return
	}

	if !w.headerWrote {
		w.WriteHeader(http.StatusOK)
	}

	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

var (
	_ http.ResponseWriter = &responseWriter{}
	_ http.Flusher        = &responseWriter{}
)

func isHTML(header http.Header) bool {
	contentType := header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "text/html"
}
