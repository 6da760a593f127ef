package response

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"

	"embeddings-srv/pkg/discord"
	"embeddings-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data as a 200 JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes {"error": msg}. HTTPErrors keep their status; anything else is a bad request.
// Server side failures are reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if !stdErrors.As(err, &httpErr) {
		c.JSON(http.StatusBadRequest, ErrorResp{Error: MessageBadRequest})
		return
	}

	if httpErr.StatusCode >= http.StatusInternalServerError {
		report(c.Request.Context(), d, fmt.Sprintf("%s %s -> %d %s",
			c.Request.Method, c.Request.URL.Path, httpErr.StatusCode, httpErr.Message))
	}
	c.JSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Message})
}

// ErrorWithStatus writes {"error": msg} with an explicit status.
func ErrorWithStatus(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResp{Error: msg})
}

// PanicError answers a recovered panic with a 500 and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	report(c.Request.Context(), d, fmt.Sprintf("panic on %s %s: %v",
		c.Request.Method, c.Request.URL.Path, recovered))
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: MessageInternalError})
}

func report(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}
