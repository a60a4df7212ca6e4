package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/heartmon/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	tokenService    service.TokenServiceI
	caloriesService service.CaloriesServiceI
	heartService    service.HeartServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	TokenService    service.TokenServiceI
	CaloriesService service.CaloriesServiceI
	HeartService    service.HeartServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		tokenService:    servicesOptions.TokenService,
		caloriesService: servicesOptions.CaloriesService,
		heartService:    servicesOptions.HeartService,
		jwtService:      servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Post("/refresh", s.Refresh)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/logout", s.Logout)
			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.UpdateProfile)
			r.Post("/heart-data", s.IngestHeartData)
			r.Get("/realtime-heart", s.RealtimeHeart)
			r.Get("/calories", s.GetCalories)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
