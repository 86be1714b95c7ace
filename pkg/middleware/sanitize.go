package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gymapi/pkg/utils"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	newlines     = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// SanitizeInputMiddleware rejects JSON object bodies on POST, PUT and PATCH
// whose top level strings carry markup. Accepted bodies reach the handler
// byte for byte as sent.
func SanitizeInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid body")
			c.Abort()
			return
		}

		var body map[string]interface{}
		decoder := json.NewDecoder(bytes.NewReader(buf))
		decoder.UseNumber()
		if err := decoder.Decode(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Malformed JSON")
			c.Abort()
			return
		}

		keys := make([]string, 0, len(body))
		for k := range body {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if str, ok := body[k].(string); ok && hasMarkup(str) {
				utils.RespondError(c, http.StatusBadRequest, "Markup is not allowed in "+k)
				c.Abort()
				return
			}
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(buf))
		c.Request.ContentLength = int64(len(buf))

		c.Next()
	}
}

// hasMarkup reports whether the strict policy would drop anything from s.
// The policy re-escapes the text it keeps, so both sides are compared
// unescaped.
func hasMarkup(s string) bool {
	s = newlines.Replace(s)
	return html.UnescapeString(strictPolicy.Sanitize(s)) != html.UnescapeString(s)
}
