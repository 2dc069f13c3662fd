package devapi

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/louisbranch/faqdesk/internal/faq"
	apperrors "github.com/louisbranch/faqdesk/internal/platform/errors"
	platformotel "github.com/louisbranch/faqdesk/internal/platform/otel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/faqdesk/internal/services/devapi"

// response is the JSON envelope of every endpoint.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// faqBody is the create and update request body. Update bodies carry the
// full record; fields the store owns (id, createdAt) are ignored.
type faqBody struct {
	Question     string            `json:"question" validate:"required,max=500"`
	Answer       string            `json:"answer" validate:"required,max=5000"`
	Category     string            `json:"category" validate:"required,oneof=massage rental"`
	IsActive     bool              `json:"isActive"`
	Order        int               `json:"order" validate:"gte=0"`
	Translations *faq.Translations `json:"translations,omitempty"`
}

func (b *faqBody) normalize() {
	b.Question = strings.TrimSpace(b.Question)
	b.Answer = strings.TrimSpace(b.Answer)
	b.Category = strings.ToLower(strings.TrimSpace(b.Category))
}

type api struct {
	store    *Store
	validate *validator.Validate
	seed     []SeedEntry
	tracer   trace.Tracer
}

// NewApp builds the Fiber application with routes mounted under prefix
// (for example "/api"). A nil store starts empty.
func NewApp(prefix string, store *Store) *fiber.App {
	if store == nil {
		store = NewStore()
	}
	a := &api{
		store:    store,
		validate: newValidator(),
		seed:     DemoEntries(),
		tracer:   platformotel.Tracer(tracerName),
	}

	app := fiber.New(fiber.Config{
		AppName:               "faqdesk-devapi",
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(a.trace)
	app.Use(requestLog)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	var router fiber.Router = app
	if prefix = normalizePrefix(prefix); prefix != "" {
		router = app.Group(prefix)
	}
	router.Get("/faqs", a.listPublic)
	router.Get("/faqs/admin", a.listAdmin)
	router.Post("/faqs", a.create)
	router.Post("/faqs/seed", a.seedDemo)
	router.Put("/faqs/:id", a.update)
	router.Delete("/faqs/:id", a.remove)
	return app
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// categoryParam parses the optional category query. Blank selects every
// category.
func categoryParam(c *fiber.Ctx) (faq.Category, error) {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" {
		return "", nil
	}
	category, ok := faq.ParseCategory(raw)
	if !ok {
		return "", apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("unknown category %q", raw))
	}
	return category, nil
}

// idParam copies the id out of the request buffer, which fasthttp reuses
// once the handler returns.
func idParam(c *fiber.Ctx) string {
	return strings.TrimSpace(utils.CopyString(c.Params("id")))
}

func (a *api) listPublic(c *fiber.Ctx) error {
	category, err := categoryParam(c)
	if err != nil {
		return err
	}
	return c.JSON(response{Success: true, Data: a.store.List(category, true)})
}

func (a *api) listAdmin(c *fiber.Ctx) error {
	category, err := categoryParam(c)
	if err != nil {
		return err
	}
	return c.JSON(response{Success: true, Data: a.store.List(category, false)})
}

func (a *api) parseBody(c *fiber.Ctx) (faqBody, error) {
	var body faqBody
	if err := c.BodyParser(&body); err != nil {
		return faqBody{}, apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid request body", err)
	}
	body.normalize()
	if err := a.validate.Struct(body); err != nil {
		return faqBody{}, apperrors.Wrap(apperrors.CodeInvalidArgument, validationMessage(err), err)
	}
	return body, nil
}

func (a *api) create(c *fiber.Ctx) error {
	body, err := a.parseBody(c)
	if err != nil {
		return err
	}
	record := a.store.Create(faq.CreateRequest{
		Question: body.Question,
		Answer:   body.Answer,
		IsActive: body.IsActive,
		Category: faq.Category(body.Category),
	}, body.Translations)
	return c.Status(fiber.StatusCreated).JSON(response{Success: true, Data: record, Message: "FAQ created"})
}

func (a *api) update(c *fiber.Ctx) error {
	id := idParam(c)
	body, err := a.parseBody(c)
	if err != nil {
		return err
	}
	record, err := a.store.Update(id, faq.Record{
		Question:     body.Question,
		Answer:       body.Answer,
		Category:     faq.Category(body.Category),
		IsActive:     body.IsActive,
		Order:        body.Order,
		Translations: body.Translations,
	})
	if err != nil {
		return err
	}
	return c.JSON(response{Success: true, Data: record, Message: "FAQ updated"})
}

func (a *api) remove(c *fiber.Ctx) error {
	if err := a.store.Delete(idParam(c)); err != nil {
		return err
	}
	return c.JSON(response{Success: true, Message: "FAQ deleted"})
}

func (a *api) seedDemo(c *fiber.Ctx) error {
	added := a.store.Seed(a.seed)
	message := fmt.Sprintf("Seeded %d FAQs", added)
	if added == 0 {
		message = "Demo data already loaded"
	}
	return c.JSON(response{Success: true, Data: fiber.Map{"added": added}, Message: message})
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request"
	}
	field := fieldErrors[0]
	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "oneof":
		return field.Field() + " must be one of: " + strings.ReplaceAll(field.Param(), " ", ", ")
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field.Field(), field.Param())
	default:
		return field.Field() + " is invalid"
	}
}

// errorHandler writes every failure as a success:false envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status, message = fiberErr.Code, fiberErr.Message
	case apperrors.CodeOf(err) != apperrors.CodeUnknown:
		code := apperrors.CodeOf(err)
		status, message = code.HTTPStatus(), apperrors.MessageOf(err)
	default:
		log.Printf("devapi %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(response{Success: false, Message: message})
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if code := apperrors.CodeOf(err); code != apperrors.CodeUnknown {
			status = code.HTTPStatus()
		}
	}
	log.Printf("%s %s status=%d dur=%s", c.Method(), c.OriginalURL(), status, time.Since(start))
	return err
}

// trace continues the caller's W3C trace context and wraps the request in a
// server span.
func (a *api) trace(c *fiber.Ctx) error {
	ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), headerCarrier{c: c})
	ctx, span := a.tracer.Start(ctx, c.Method()+" "+c.Path(), trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()
	c.SetUserContext(ctx)

	err := c.Next()
	span.SetAttributes(attribute.Int("http.response.status_code", c.Response().StatusCode()))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// headerCarrier adapts Fiber request headers to a propagation carrier.
type headerCarrier struct {
	c *fiber.Ctx
}

func (h headerCarrier) Get(key string) string {
	return h.c.Get(key)
}

func (h headerCarrier) Set(key string, value string) {
	h.c.Set(key, value)
}

func (h headerCarrier) Keys() []string {
	headers := h.c.GetReqHeaders()
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	return keys
}
