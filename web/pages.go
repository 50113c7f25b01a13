package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
)

const (
	featuredRooms  = 3
	featuredPlaces = 4
)

func (s *Server) home(c *gin.Context) {
	ctx := c.Request.Context()
	rooms, err := s.api.Rooms(ctx)
	if err != nil {
		s.fail(c, "/", err)
		return
	}
	places, err := s.api.Places(ctx)
	if err != nil {
		s.fail(c, "/", err)
		return
	}

	featured := make([]models.Room, 0, featuredRooms)
	for _, r := range rooms {
		if r.Status == models.RoomAvailable && len(featured) < featuredRooms {
			featured = append(featured, r)
		}
	}
	if len(places) > featuredPlaces {
		places = places[:featuredPlaces]
	}
	s.render(c, http.StatusOK, "home", gin.H{
		"Title":  "Welcome",
		"Rooms":  featured,
		"Places": places,
	})
}

func (s *Server) rooms(c *gin.Context) {
	checkIn, checkOut := c.Query("check_in"), c.Query("check_out")
	guests, _ := strconv.Atoi(c.Query("guests"))

	var (
		rooms []models.Room
		err   error
	)
	searching := checkIn != "" && checkOut != ""
	if searching {
		rooms, err = s.api.SearchRooms(c.Request.Context(), checkIn, checkOut, guests)
	} else {
		rooms, err = s.api.Rooms(c.Request.Context())
	}

	data := gin.H{
		"Title":     "Rooms",
		"CheckIn":   checkIn,
		"CheckOut":  checkOut,
		"Guests":    guests,
		"Searching": searching,
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest:
		data["Error"] = apiErr.Message
	case err != nil:
		s.fail(c, "/", err)
		return
	}
	data["Rooms"] = rooms
	s.render(c, http.StatusOK, "rooms", data)
}

func (s *Server) room(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		s.render(c, http.StatusNotFound, "error", gin.H{"Title": "Not found", "Message": "Room not found"})
		return
	}
	ctx := c.Request.Context()
	room, err := s.api.Room(ctx, uint(id))
	if isStatus(err, http.StatusNotFound) {
		s.render(c, http.StatusNotFound, "error", gin.H{"Title": "Not found", "Message": "Room not found"})
		return
	}
	if err != nil {
		s.fail(c, "/rooms", err)
		return
	}
	reviews, err := s.api.Reviews(ctx, room.ID)
	if err != nil {
		s.fail(c, "/rooms", err)
		return
	}
	cart := readCart(c)
	s.render(c, http.StatusOK, "room", gin.H{
		"Title":   room.Title,
		"Room":    room,
		"Reviews": reviews,
		"Cart":    cart,
	})
}

type galleryImage struct {
	Caption string
	URL     string
}

func (s *Server) gallery(c *gin.Context) {
	ctx := c.Request.Context()
	rooms, err := s.api.Rooms(ctx)
	if err != nil {
		s.fail(c, "/", err)
		return
	}
	places, err := s.api.Places(ctx)
	if err != nil {
		s.fail(c, "/", err)
		return
	}
	var images []galleryImage
	for _, r := range rooms {
		for _, u := range r.Images {
			images = append(images, galleryImage{Caption: r.Title, URL: u})
		}
	}
	for _, p := range places {
		for _, u := range p.Images {
			images = append(images, galleryImage{Caption: p.Title, URL: u})
		}
	}
	s.render(c, http.StatusOK, "gallery", gin.H{"Title": "Gallery", "Images": images})
}

func (s *Server) contactForm(c *gin.Context) {
	s.render(c, http.StatusOK, "contact", gin.H{"Title": "Contact us"})
}

func (s *Server) contactSubmit(c *gin.Context) {
	in := services.ContactInput{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Phone:   strings.TrimSpace(c.PostForm("phone")),
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	if err := s.api.Contact(c.Request.Context(), in); err != nil {
		s.fail(c, "/contact", err)
		return
	}
	setFlash(c, "Thank you, we will get back to you soon")
	c.Redirect(http.StatusSeeOther, "/contact")
}

func (s *Server) signinForm(c *gin.Context) {
	s.render(c, http.StatusOK, "signin", gin.H{"Title": "Sign in", "Next": c.Query("next")})
}

func (s *Server) signinSubmit(c *gin.Context) {
	login := strings.TrimSpace(c.PostForm("login"))
	session, err := s.api.Signin(c.Request.Context(), login, c.PostForm("password"))
	if err != nil {
		s.fail(c, "/signin", err)
		return
	}
	setSession(c, session.AccessToken, session.RefreshToken, s.secure)

	def := "/dashboard"
	if session.User != nil && session.User.Role == models.RoleAdmin {
		def = "/admin"
	}
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next"), def))
}

func (s *Server) signupForm(c *gin.Context) {
	s.render(c, http.StatusOK, "signup", gin.H{"Title": "Create an account"})
}

func (s *Server) signupSubmit(c *gin.Context) {
	ctx := c.Request.Context()
	in := services.SignupInput{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		Password: c.PostForm("password"),
		Address:  strings.TrimSpace(c.PostForm("address")),
	}
	if err := s.api.Signup(ctx, in); err != nil {
		s.fail(c, "/signup", err)
		return
	}
	session, err := s.api.Signin(ctx, in.Phone, in.Password)
	if err != nil {
		s.fail(c, "/signin", err)
		return
	}
	setSession(c, session.AccessToken, session.RefreshToken, s.secure)
	setFlash(c, "Welcome to "+s.hotel)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) signout(c *gin.Context) {
	if token, _ := c.Cookie(accessCookie); token != "" {
		// The API may already consider the token dead.
		_ = s.api.Logout(c.Request.Context(), token)
	}
	clearSession(c)
	setFlash(c, "You have been signed out")
	c.Redirect(http.StatusSeeOther, "/")
}

// Cart

type cartView struct {
	Rooms    []models.Room
	Nights   int
	Subtotal float64
	Quote    *services.CouponQuote
}

func (s *Server) cart(c *gin.Context) {
	ctx := c.Request.Context()
	cart := readCart(c)
	view := cartView{}
	for _, id := range cart.RoomIDs {
		room, err := s.api.Room(ctx, id)
		if isStatus(err, http.StatusNotFound) {
			continue
		}
		if err != nil {
			s.fail(c, "/rooms", err)
			return
		}
		view.Rooms = append(view.Rooms, *room)
	}

	data := gin.H{"Title": "Your stay", "Cart": cart}
	if in, err := utils.ParseDate(cart.CheckIn); err == nil {
		if out, err := utils.ParseDate(cart.CheckOut); err == nil && out.After(in) {
			view.Nights = utils.Nights(in, out)
			view.Subtotal = services.StaySubtotal(view.Rooms, view.Nights)
		}
	}

	if code := strings.TrimSpace(c.Query("coupon")); code != "" && view.Subtotal > 0 {
		data["Coupon"] = code
		err := s.withSession(c, func(token string) error {
			q, err := s.api.ApplyCoupon(ctx, token, code, view.Subtotal)
			view.Quote = q
			return err
		})
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
			data["CouponError"] = apiErr.Message
		case err != nil:
			s.fail(c, "/cart", err)
			return
		}
	}
	data["View"] = view
	s.render(c, http.StatusOK, "cart", data)
}

func (s *Server) cartAdd(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("room_id"), 10, 64)
	if err != nil || id == 0 {
		setFlash(c, "Pick a room first")
		c.Redirect(http.StatusSeeOther, "/rooms")
		return
	}
	cart := readCart(c)
	cart.Add(uint(id))
	if v := c.PostForm("check_in"); v != "" {
		cart.CheckIn = v
	}
	if v := c.PostForm("check_out"); v != "" {
		cart.CheckOut = v
	}
	if g, err := strconv.Atoi(c.PostForm("guests")); err == nil && g > 0 {
		cart.Guests = g
	}
	writeCart(c, cart)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (s *Server) cartRemove(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("room_id"), 10, 64)
	if err == nil {
		cart := readCart(c)
		cart.Remove(uint(id))
		writeCart(c, cart)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (s *Server) cartConfirm(c *gin.Context) {
	cart := readCart(c)
	if v := c.PostForm("check_in"); v != "" {
		cart.CheckIn = v
	}
	if v := c.PostForm("check_out"); v != "" {
		cart.CheckOut = v
	}
	if g, err := strconv.Atoi(c.PostForm("guests")); err == nil && g > 0 {
		cart.Guests = g
	}
	if cart.Guests == 0 {
		cart.Guests = 1
	}
	if cart.Empty() || cart.CheckIn == "" || cart.CheckOut == "" {
		writeCart(c, cart)
		setFlash(c, "Add a room and choose your dates first")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	var booking *models.Booking
	err := s.withSession(c, func(token string) error {
		var err error
		booking, err = s.api.CreateBooking(c.Request.Context(), token, cart, strings.TrimSpace(c.PostForm("coupon_code")))
		return err
	})
	if err != nil {
		writeCart(c, cart)
		s.fail(c, "/cart", err)
		return
	}
	clearCart(c)
	setFlash(c, "Booking "+booking.ReferenceCode+" created")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Dashboard

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		user     *models.User
		bookings []models.Booking
	)
	err := s.withSession(c, func(token string) error {
		var err error
		if user, err = s.api.Me(ctx, token); err != nil {
			return err
		}
		bookings, err = s.api.MyBookings(ctx, token)
		return err
	})
	if err != nil {
		s.fail(c, "/", err)
		return
	}
	s.render(c, http.StatusOK, "dashboard", gin.H{
		"Title":          "My bookings",
		"User":           user,
		"Bookings":       bookings,
		"PaymentMethods": utils.PaymentMethods,
	})
}

func bookingParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		setFlash(c, "Unknown booking")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return 0, false
	}
	return uint(id), true
}

func (s *Server) cancelBooking(c *gin.Context) {
	id, ok := bookingParam(c)
	if !ok {
		return
	}
	err := s.withSession(c, func(token string) error {
		return s.api.CancelBooking(c.Request.Context(), token, id)
	})
	if err != nil {
		s.fail(c, "/dashboard", err)
		return
	}
	setFlash(c, "Booking cancelled")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) payBooking(c *gin.Context) {
	id, ok := bookingParam(c)
	if !ok {
		return
	}
	var ref string
	err := s.withSession(c, func(token string) error {
		var err error
		ref, err = s.api.PayBooking(c.Request.Context(), token, id, c.PostForm("method"))
		return err
	})
	if err != nil {
		s.fail(c, "/dashboard", err)
		return
	}
	setFlash(c, "Payment received, reference "+ref)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) receipt(c *gin.Context) {
	id, ok := bookingParam(c)
	if !ok {
		return
	}
	var pdf []byte
	err := s.withSession(c, func(token string) error {
		var err error
		pdf, err = s.api.Receipt(c.Request.Context(), token, id)
		return err
	})
	if err != nil {
		s.fail(c, "/dashboard", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="receipt-`+strconv.FormatUint(uint64(id), 10)+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Admin

const revenueDays = 7

func (s *Server) admin(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		stats   *services.Stats
		revenue []services.DailyRevenue
	)
	err := s.withSession(c, func(token string) error {
		if err := s.api.AdminVerify(ctx, token); err != nil {
			return err
		}
		var err error
		if stats, err = s.api.Stats(ctx, token); err != nil {
			return err
		}
		revenue, err = s.api.Revenue(ctx, token, revenueDays)
		return err
	})
	if isStatus(err, http.StatusForbidden) {
		setFlash(c, "Admins only")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		s.fail(c, "/", err)
		return
	}
	s.render(c, http.StatusOK, "admin", gin.H{
		"Title":   "Admin dashboard",
		"Stats":   stats,
		"Revenue": revenue,
	})
}
