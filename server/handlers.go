package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ugparu/dtminfo/format/dtm"
	"github.com/ugparu/dtminfo/utils/logger"
)

// Error kinds reported to clients.
const (
	kindInvalidMagic   = "invalid_magic"
	kindTruncatedInput = "truncated_input"
	kindTooLarge       = "too_large"
	kindBadRequest     = "bad_request"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// postHeader decodes the movie file sent either as the raw body or as the
// multipart field "file".
func (s *Server) postHeader(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)

	var body io.Reader = c.Request.Body
	if c.ContentType() == "multipart/form-data" {
		fh, err := c.FormFile("file")
		if err != nil {
			s.fail(c, err)
			return
		}
		f, err := fh.Open()
		if err != nil {
			s.fail(c, err)
			return
		}
		defer f.Close()
		body = f
	}

	h, err := dtm.Decode(body)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) fail(c *gin.Context, err error) {
	var (
		magicErr *dtm.InvalidMagicError
		truncErr *dtm.TruncatedInputError
		sizeErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &magicErr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kindInvalidMagic})
	case errors.As(err, &truncErr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kindTruncatedInput, Field: truncErr.Field})
	case errors.As(err, &sizeErr):
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error(), Kind: kindTooLarge})
	default:
		logger.Warningf(s, "Bad upload: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kindBadRequest})
	}
}
