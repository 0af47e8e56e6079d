package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type languageMatcher interface {
	Match(acceptLanguage string) string
}

// Root redirects to the invitation page in the language that best suits the
// visitor's Accept-Language header
func Root(c *fiber.Ctx, matcher languageMatcher) error {
	return c.Redirect(fmt.Sprintf("/%s", matcher.Match(c.Get(fiber.HeaderAcceptLanguage))))
}
