package routes

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mbolis/quick-docs/app"
	"github.com/mbolis/quick-docs/httpx"
	"github.com/mbolis/quick-docs/log"
	"github.com/mbolis/quick-docs/resolver"
)

// UploadFile runs a file selection through the resolver and returns the
// embeddable data URI the client puts into its file field. On failure
// the client resets the field to empty.
func UploadFile(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(resolver.MaxFileSize + 4096)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_multipart")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_form_file")
			return
		}
		defer file.Close()

		// read one byte past the limit so the resolver can tell
		content, err := io.ReadAll(io.LimitReader(file, resolver.MaxFileSize+1))
		if err != nil {
			httpx.LogInternalError(w, "request.read_file", err)
			return
		}

		dataURI, err := resolver.Resolve(header.Filename, content)
		switch {
		case errors.Is(err, resolver.ErrTooLarge):
			httpx.LogStatusMsg(w, http.StatusRequestEntityTooLarge, log.DebugLevel, "resolver.too_large", "%s", err)
			return
		case errors.Is(err, resolver.ErrUnsupportedType):
			httpx.LogStatusMsg(w, http.StatusUnsupportedMediaType, log.DebugLevel, "resolver.unsupported_type", "%s", err)
			return
		case err != nil:
			httpx.LogInternalError(w, "resolver.resolve", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"name":    header.Filename,
			"dataUri": dataURI,
		})
	}
}
