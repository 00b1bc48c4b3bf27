package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_offers"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/handoff"
	"github.com/light-bringer/storefront-service/internal/app/whatsapp"
	"github.com/light-bringer/storefront-service/internal/metrics"
	"github.com/light-bringer/storefront-service/internal/models/m_cart"
)

// Handler implements the storefront HTTP API. It's a thin coordinator
// that delegates to use cases and queries.
type Handler struct {
	// Queries
	listProducts   *list_products.Query
	listCategories *list_categories.Query
	getProduct     *get_product.Query
	listOffers     *list_offers.Query
	getCart        *get_cart.Query

	// Commands
	addItem        *add_item.Interactor
	removeItem     *remove_item.Interactor
	updateQuantity *update_quantity.Interactor
	clearCart      *clear_cart.Interactor

	handoffs  *handoff.Service
	messenger *whatsapp.Messenger
	reg       *metrics.Registry
}

// NewHandler creates a new storefront HTTP handler.
func NewHandler(
	listProducts *list_products.Query,
	listCategories *list_categories.Query,
	getProduct *get_product.Query,
	listOffers *list_offers.Query,
	getCart *get_cart.Query,
	addItem *add_item.Interactor,
	removeItem *remove_item.Interactor,
	updateQuantity *update_quantity.Interactor,
	clearCart *clear_cart.Interactor,
	handoffs *handoff.Service,
	messenger *whatsapp.Messenger,
	reg *metrics.Registry,
) *Handler {
	return &Handler{
		listProducts:   listProducts,
		listCategories: listCategories,
		getProduct:     getProduct,
		listOffers:     listOffers,
		getCart:        getCart,
		addItem:        addItem,
		removeItem:     removeItem,
		updateQuantity: updateQuantity,
		clearCart:      clearCart,
		handoffs:       handoffs,
		messenger:      messenger,
		reg:            reg,
	}
}

// Register mounts all storefront routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	if h.reg != nil {
		r.GET("/metrics", gin.WrapH(h.reg.Handler()))
	}

	api := r.Group("/api/v1")
	api.GET("/products", h.handleListProducts)
	api.GET("/products/:id", h.handleGetProduct)
	api.GET("/categories", h.handleListCategories)
	api.GET("/offers", h.handleListOffers)

	api.GET("/cart", h.handleGetCart)
	api.POST("/cart/items", h.handleAddItem)
	api.PATCH("/cart/items/:productId", h.handleUpdateQuantity)
	api.DELETE("/cart/items/:productId", h.handleRemoveItem)
	api.DELETE("/cart", h.handleClearCart)

	api.POST("/whatsapp/product-message", h.handleProductMessage)
	api.POST("/whatsapp/contact-message", h.handleContactMessage)

	api.POST("/handoffs", h.handleCreateHandoff)
	api.GET("/handoffs/:id", h.handleGetHandoff)
	api.DELETE("/handoffs/:id", h.handleCancelHandoff)
}

// cartID resolves the cart slot for the request. The storefront has a
// single fixed slot; a header can point tests at another one.
func cartID(c *gin.Context) string {
	if id := c.GetHeader("X-Cart-ID"); id != "" {
		return id
	}
	return m_cart.DefaultSlot
}

func (h *Handler) handleListProducts(c *gin.Context) {
	req := &list_products.Request{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	products, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) handleGetProduct(c *gin.Context) {
	product, err := h.getProduct.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) handleListCategories(c *gin.Context) {
	categories, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) handleListOffers(c *gin.Context) {
	offers, err := h.listOffers.Execute(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

func (h *Handler) handleGetCart(c *gin.Context) {
	cart, err := h.getCart.Execute(c.Request.Context(), cartID(c))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) handleAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateAddItemRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.addItem.Execute(c.Request.Context(), &add_item.Request{
		CartID:    cartID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}
	h.respondWithCart(c)
}

func (h *Handler) handleUpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.updateQuantity.Execute(c.Request.Context(), &update_quantity.Request{
		CartID:    cartID(c),
		ProductID: c.Param("productId"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}
	h.respondWithCart(c)
}

func (h *Handler) handleRemoveItem(c *gin.Context) {
	err := h.removeItem.Execute(c.Request.Context(), &remove_item.Request{
		CartID:    cartID(c),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}
	h.respondWithCart(c)
}

func (h *Handler) handleClearCart(c *gin.Context) {
	err := h.clearCart.Execute(c.Request.Context(), &clear_cart.Request{CartID: cartID(c)})
	if err != nil {
		mapDomainError(c, err)
		return
	}
	h.respondWithCart(c)
}

// respondWithCart returns the post-mutation cart state so the storefront
// can rerender without a second round trip.
func (h *Handler) respondWithCart(c *gin.Context) {
	cart, err := h.getCart.Execute(c.Request.Context(), cartID(c))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) handleProductMessage(c *gin.Context) {
	var req productMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateProductMessageRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.getProduct.Execute(c.Request.Context(), req.ProductID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	price, _ := moneyFromAmount(product.Price)
	msg := whatsapp.ProductMessage(product.Name, product.SKU, price, req.Quantity)
	if h.reg != nil {
		h.reg.WhatsAppLinks.Inc()
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msg.Text,
		"encoded": msg.Encoded,
		"url":     h.messenger.URL(msg.Encoded),
	})
}

func (h *Handler) handleContactMessage(c *gin.Context) {
	var req contactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateContactMessageRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := whatsapp.ContactMessage(req.Name, req.Phone, req.Message, req.Product)
	if h.reg != nil {
		h.reg.WhatsAppLinks.Inc()
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msg.Text,
		"encoded": msg.Encoded,
		"url":     h.messenger.URL(msg.Encoded),
	})
}

func (h *Handler) handleCreateHandoff(c *gin.Context) {
	var req createHandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateCreateHandoffRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		hd  handoff.Handoff
		err error
	)
	switch req.Type {
	case handoffTypeProduct:
		hd, err = h.handoffs.CreateProduct(c.Request.Context(), req.ProductID, req.Quantity)
	case handoffTypeContact:
		hd, err = h.handoffs.CreateContact(req.Name, req.Phone, req.Message, req.Product)
	}
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, hd)
}

func (h *Handler) handleGetHandoff(c *gin.Context) {
	hd, err := h.handoffs.Get(c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hd)
}

func (h *Handler) handleCancelHandoff(c *gin.Context) {
	hd, err := h.handoffs.Cancel(c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hd)
}
