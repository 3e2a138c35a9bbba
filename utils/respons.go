package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta membawa informasi pagination pada response list
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondPaginated -> response list dengan meta pagination
func RespondPaginated(c *gin.Context, code int, message string, data interface{}, meta Meta) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
		Meta:    &meta,
	})
}

// RespondError menulis error dengan kode taksonomi yang stabil.
// Error biasa (tanpa kode) dipetakan ke INTERNAL_ERROR dengan pesan
// generik; detail aslinya hanya masuk log, tidak ke client.
func RespondError(c *gin.Context, code int, err error) {
	apiErr, ok := err.(*ApiError)
	if !ok {
		ErrorLogger.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(code, JSONResponse{
			Status:  false,
			Message: "Internal server error",
			Error:   CodeInternal,
		})
		return
	}
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: apiErr.Message,
		Error:   apiErr.Code,
	})
}
