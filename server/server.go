package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"quickquote.io/quickquote/handlers"
)

type Server struct {
	echo      *echo.Echo
	Business  handlers.BusinessHandler
	Service   handlers.ServiceHandler
	Customer  handlers.CustomerHandler
	Quote     handlers.QuoteHandler
	Dashboard handlers.DashboardHandler
}

func NewServer(
	Business handlers.BusinessHandler,
	Service handlers.ServiceHandler,
	Customer handlers.CustomerHandler,
	Quote handlers.QuoteHandler,
	Dashboard handlers.DashboardHandler,
) *Server {
	return &Server{
		echo:      echo.New(),
		Business:  Business,
		Service:   Service,
		Customer:  Customer,
		Quote:     Quote,
		Dashboard: Dashboard,
	}
}

// Start initializes the server by registering middlewares and routes, and starts listening for connections on the provided address.
// It returns an error if there is an issue starting the server.
func (s *Server) Start(address string) error {
	s.registerMiddlewares()
	s.registerRoutes()
	return s.echo.Start(address)
}

// Run starts the server in a goroutine and blocks until an interrupt
// or SIGTERM arrives, then shuts the server down with a 5 second
// grace period.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
}

func (s *Server) registerRoutes() {

	s.echo.POST("/business", s.Business.CreateBusiness)
	s.echo.GET("/business/:id", s.Business.GetBusiness)
	s.echo.PUT("/business/:id", s.Business.UpdateBusiness)
	s.echo.GET("/users/:user_id/business", s.Business.GetBusinessByUser)

	s.echo.POST("/services", s.Service.CreateService)
	s.echo.GET("/services/:id", s.Service.GetService)
	s.echo.PUT("/services/:id", s.Service.UpdateService)
	s.echo.DELETE("/services/:id", s.Service.DeleteService)
	s.echo.GET("/services", s.Service.ListServices)

	s.echo.POST("/customers", s.Customer.CreateCustomer)
	s.echo.GET("/customers/:id", s.Customer.GetCustomer)
	s.echo.PUT("/customers/:id", s.Customer.UpdateCustomer)
	s.echo.DELETE("/customers/:id", s.Customer.DeleteCustomer)
	s.echo.GET("/customers", s.Customer.ListCustomers)

	s.echo.POST("/quotes", s.Quote.CreateQuote)
	s.echo.POST("/quotes/preview", s.Quote.PreviewQuote)
	s.echo.POST("/quotes/import", s.Quote.ImportQuote)
	s.echo.GET("/quotes", s.Quote.ListQuotes)
	s.echo.GET("/quotes/:id", s.Quote.GetQuote)
	s.echo.PUT("/quotes/:id", s.Quote.UpdateQuote)
	s.echo.DELETE("/quotes/:id", s.Quote.DeleteQuote)
	s.echo.PATCH("/quotes/:id/status", s.Quote.UpdateQuoteStatus)
	s.echo.POST("/quotes/:id/duplicate", s.Quote.DuplicateQuote)
	s.echo.GET("/quotes/:id/share", s.Quote.ShareQuote)
	s.echo.GET("/quotes/:id/pdf", s.Quote.QuotePDF)
	s.echo.GET("/quotes/:id/export", s.Quote.ExportQuote)

	s.echo.GET("/dashboard/stats", s.Dashboard.GetStats)
	s.echo.GET("/dashboard/recent", s.Dashboard.GetRecentQuotes)
}
