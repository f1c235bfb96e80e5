package middleware

import (
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator places the validation-message translator in the
// request context for BindAndValid.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {
	return func(c *gin.Context) {
		trans, _ := uni.GetTranslator("en")
		c.Set("trans", trans)
		c.Next()
	}
}
