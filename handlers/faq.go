package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rutabikini/site/content"
	"github.com/rutabikini/site/faq"
	"github.com/rutabikini/site/ui"
)

// HandleFAQToggle returns the fragment for one accordion entry after a single
// activation. The client sends the state it is showing; the server keeps none.
func HandleFAQToggle(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question index")
	}

	wasOpen := c.QueryBool("open", false)

	l, err := content.Landing.FAQList()
	if err != nil {
		return err
	}

	// Replay the client's current state, then apply the requested activation.
	if wasOpen {
		if err := l.Activate(index); err != nil {
			return faqError(err)
		}
	}
	if err := l.Activate(index); err != nil {
		return faqError(err)
	}

	entry, err := l.At(index)
	if err != nil {
		return faqError(err)
	}
	return render(c, ui.FAQItem(index, entry))
}

func faqError(err error) error {
	if errors.Is(err, faq.ErrNoSuchEntry) {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}
	return err
}
