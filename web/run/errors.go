package webapp

import (
	"log"
	"net/http"
)

type errorData struct {
	Code    int
	Title   string
	Message string
}

var errorTemplates = map[int]errorData{
	http.StatusBadRequest: {
		Code:    400,
		Title:   "Bad Request",
		Message: "The request could not be understood by the server.",
	},
	http.StatusNotFound: {
		Code:    404,
		Title:   "Not Found",
		Message: "The page you're looking for doesn't exist or has been moved.",
	},
	http.StatusInternalServerError: {
		Code:    500,
		Title:   "Internal Server Error",
		Message: "Something went wrong on our end. Please try again later.",
	},
	http.StatusServiceUnavailable: {
		Code:    503,
		Title:   "Service Unavailable",
		Message: "The service is temporarily unavailable. Please try again later.",
	},
}

func (webapp *WebApp) renderError(w http.ResponseWriter, code int, customMessage string) {
	data, ok := errorTemplates[code]
	if !ok {
		data = errorData{
			Code:    code,
			Title:   "Error",
			Message: "An unexpected error occurred.",
		}
	}

	if customMessage != "" {
		data.Message = customMessage
	}

	w.WriteHeader(code)

	tmpl := webapp.TemplateCache["error.html"]
	if tmpl == nil {
		log.Printf("Error template not found, falling back to plain text")
		http.Error(w, data.Message, code)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "error.html", data); err != nil {
		log.Printf("Error rendering error template: %v", err)
	}
}

func (webapp *WebApp) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.renderError(w, http.StatusNotFound, "")
	}
}
