package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/page"
	"github.com/rl1809/storefront/internal/render"
)

const (
	sessionCookie = "sid"
	sessionKey    = "session_id"
)

type HTTPOptions struct {
	Products      []render.ProductCard
	SessionTTL    time.Duration
	SecureCookies bool
}

type HTTPHandler struct {
	sessions *service.Sessions
	opts     HTTPOptions
	logger   *zap.Logger
}

type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

type addItemForm struct {
	Name  string `form:"name" binding:"required"`
	Price string `form:"price" binding:"required"`
	Image string `form:"img"`
}

func NewHTTPHandler(sessions *service.Sessions, opts HTTPOptions, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{sessions: sessions, opts: opts, logger: logger}
}

// Register mounts the storefront pages on r.
func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)

	pages := r.Group("/", h.Session)
	pages.GET("/", h.Catalog)
	pages.GET("/shop", h.Catalog)
	pages.POST("/cart/items", h.AddItem)
	pages.GET("/cart", h.Cart)
	pages.POST("/cart/items/:index/quantity", h.UpdateQuantity)
	pages.POST("/cart/items/:index/remove", h.RemoveItem)
	pages.GET("/checkout", h.Checkout)
	pages.POST("/checkout", h.PlaceOrder)
	pages.GET("/invoice", h.Invoice)
	pages.GET("/login", h.authPage(page.AuthLogin))
	pages.POST("/login", h.authSubmit(page.AuthLogin))
	pages.GET("/register", h.authPage(page.AuthRegister))
	pages.POST("/register", h.authSubmit(page.AuthRegister))
}

// Session makes sure every request carries a session cookie. Unknown or
// malformed ids are replaced.
func (h *HTTPHandler) Session(c *gin.Context) {
	sid, err := c.Cookie(sessionCookie)
	if err != nil || uuid.Validate(sid) != nil {
		sid = uuid.NewString()
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sid, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.SecureCookies, true)
	c.Set(sessionKey, sid)
	c.Next()
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) Catalog(c *gin.Context) {
	doc := &render.CatalogDocument{Products: h.opts.Products}
	if _, ok := h.enter(c, page.Descriptor{AddToCart: true}); !ok {
		return
	}
	h.writeDocument(c, http.StatusOK, doc, doc.Products)
}

func (h *HTTPHandler) AddItem(c *gin.Context) {
	var form addItemForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "name and price are required"})
		return
	}

	res, ok := h.handle(c, page.Descriptor{AddToCart: true}, page.AddToCart{
		Name:  form.Name,
		Price: form.Price,
		Image: form.Image,
	})
	if !ok {
		return
	}
	h.reply(c, res.Signal, "/cart")
}

func (h *HTTPHandler) Cart(c *gin.Context) {
	doc := &render.CartDocument{}
	if _, ok := h.enter(c, page.Descriptor{CartTable: doc}); !ok {
		return
	}
	h.writeDocument(c, http.StatusOK, doc, doc)
}

func (h *HTTPHandler) UpdateQuantity(c *gin.Context) {
	index, ok := h.lineIndex(c)
	if !ok {
		return
	}
	h.changeCart(c, page.ChangeQuantity{Index: index, Value: c.PostForm("qty")})
}

func (h *HTTPHandler) RemoveItem(c *gin.Context) {
	index, ok := h.lineIndex(c)
	if !ok {
		return
	}
	h.changeCart(c, page.RemoveItem{Index: index})
}

func (h *HTTPHandler) changeCart(c *gin.Context, ev page.Event) {
	doc := &render.CartDocument{}
	if _, ok := h.handle(c, page.Descriptor{CartTable: doc}, ev); !ok {
		return
	}
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *HTTPHandler) Checkout(c *gin.Context) {
	if _, ok := h.enter(c, page.Descriptor{CheckoutForm: true}); !ok {
		return
	}
	h.writeDocument(c, http.StatusOK, &render.CheckoutDocument{}, nil)
}

func (h *HTTPHandler) PlaceOrder(c *gin.Context) {
	var form page.CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid checkout form"})
		return
	}

	res, err := h.dispatch(c, page.Descriptor{CheckoutForm: true}, func(ctrl page.Controller) (page.Result, error) {
		return ctrl.Handle(c.Request.Context(), page.SubmitCheckout{Form: form})
	})
	if err == nil {
		h.reply(c, res.Signal, modePath(res.Redirect))
		return
	}

	status, message := h.classify(c, err)
	if wantsHTML(c) {
		h.writeDocument(c, status, &render.CheckoutDocument{Error: message}, nil)
		return
	}
	c.JSON(status, MessageResponse{Message: message})
}

func (h *HTTPHandler) Invoice(c *gin.Context) {
	doc := &render.InvoiceDocument{}
	res, ok := h.enter(c, page.Descriptor{Invoice: doc})
	if !ok {
		return
	}
	if !res.Rendered && wantsJSON(c) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "no order has been placed"})
		return
	}
	h.writeDocument(c, http.StatusOK, doc, doc)
}

func (h *HTTPHandler) authPage(kind page.AuthKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := h.enter(c, page.Descriptor{Auth: kind}); !ok {
			return
		}
		h.writeDocument(c, http.StatusOK, &render.AuthDocument{Kind: authName(kind)}, nil)
	}
}

// authSubmit answers login and register posts. Accounts do not exist, so the
// reply is always 501 with the controller's notice.
func (h *HTTPHandler) authSubmit(kind page.AuthKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := h.handle(c, page.Descriptor{Auth: kind}, page.SubmitAuth{})
		if !ok {
			return
		}
		doc := &render.AuthDocument{Kind: authName(kind), Message: res.Signal}
		h.writeDocument(c, http.StatusNotImplemented, doc, MessageResponse{Message: res.Signal})
	}
}

// enter loads the page described by d and runs its entry step.
func (h *HTTPHandler) enter(c *gin.Context, d page.Descriptor) (page.Result, bool) {
	return h.run(c, d, func(ctrl page.Controller) (page.Result, error) {
		return ctrl.Enter(c.Request.Context())
	})
}

// handle delivers ev to the page described by d.
func (h *HTTPHandler) handle(c *gin.Context, d page.Descriptor, ev page.Event) (page.Result, bool) {
	return h.run(c, d, func(ctrl page.Controller) (page.Result, error) {
		return ctrl.Handle(c.Request.Context(), ev)
	})
}

func (h *HTTPHandler) run(c *gin.Context, d page.Descriptor, step func(page.Controller) (page.Result, error)) (page.Result, bool) {
	res, err := h.dispatch(c, d, step)
	if err != nil {
		h.fail(c, err)
		return page.Result{}, false
	}
	return res, true
}

// dispatch runs step on the page controller for d while holding the
// session lock.
func (h *HTTPHandler) dispatch(c *gin.Context, d page.Descriptor, step func(page.Controller) (page.Result, error)) (page.Result, error) {
	stores, release, err := h.sessions.Acquire(c.Request.Context(), c.GetString(sessionKey))
	if err != nil {
		return page.Result{}, err
	}
	defer release()

	ctrl, err := page.New(d, stores)
	if err != nil {
		return page.Result{}, err
	}
	return step(ctrl)
}

func (h *HTTPHandler) fail(c *gin.Context, err error) {
	status, message := h.classify(c, err)
	c.AbortWithStatusJSON(status, MessageResponse{Message: message})
}

// classify maps an error to a status code and a message safe to show.
func (h *HTTPHandler) classify(c *gin.Context, err error) (int, string) {
	_ = c.Error(err)

	var parseErr *domain.PriceParseError
	switch {
	case errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.As(err, &parseErr):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return http.StatusConflict, err.Error()
	case errors.Is(err, page.ErrUnsupportedEvent):
		return http.StatusMethodNotAllowed, err.Error()
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "session busy, try again"
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String(sessionKey, c.GetString(sessionKey)),
			zap.Error(err))
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *HTTPHandler) lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %q", domain.ErrInvalidIndex, c.Param("index")))
		return 0, false
	}
	return index, true
}

// reply answers a form post. Browsers are sent on to next; API clients get
// the message as JSON.
func (h *HTTPHandler) reply(c *gin.Context, message, next string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, next)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: message, Redirect: next})
}

// writeDocument renders doc as HTML, or data as JSON when the client asks
// for it. A nil data always renders HTML.
func (h *HTTPHandler) writeDocument(c *gin.Context, status int, doc render.Document, data any) {
	if data != nil && wantsJSON(c) {
		c.JSON(status, data)
		return
	}

	var buf bytes.Buffer
	if err := doc.WriteHTML(&buf); err != nil {
		h.fail(c, fmt.Errorf("render page: %w", err))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// wantsHTML reports a browser form post. Clients that send no Accept header
// get JSON.
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

// wantsJSON reports an API client fetching a page. Pages default to HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func modePath(m page.Mode) string {
	switch m {
	case page.ModeCart:
		return "/cart"
	case page.ModeCheckout:
		return "/checkout"
	case page.ModeInvoice:
		return "/invoice"
	default:
		return "/shop"
	}
}

func authName(kind page.AuthKind) string {
	if kind == page.AuthRegister {
		return "register"
	}
	return "login"
}
