package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/orgchathq/orgchat-api/metrics"
	"github.com/orgchathq/orgchat-api/models"
	"github.com/orgchathq/orgchat-api/services"
	v1 "github.com/orgchathq/orgchat-api/v1"
	"github.com/orgchathq/orgchat-api/v1/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	// Configure the logger
	setupLogging(os.Getenv("APP_ENV"))

	//================================================================================
	// Create the database connection
	//================================================================================

	// Get the database driver for the database string
	dbDriver := ParseDatabaseDriver(os.Getenv("DB_URL"))
	if dbDriver == nil {
		log.Fatal().Msg("failed to create database driver, check DB_URL environment variable")
	}

	// Create the database connection
	db, err := gorm.Open(dbDriver, &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	// Migrate the schema
	if err := db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Member{},
		&models.ChatRoom{},
		&models.ChatAccess{},
		&models.Message{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	//================================================================================
	// Setup the WebSockets server
	//================================================================================

	// Get all of the allowed origins
	allowedOrigins := GetAllowedOrigins()

	// Create the server
	socketIoServer := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&polling.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
			&websocket.Transport{
				CheckOrigin: checkOrigin(allowedOrigins),
			},
		},
	})
	go socketIoServer.Serve()
	defer socketIoServer.Close()

	//================================================================================
	// Create all the service instances
	//================================================================================

	accountsService := &services.AccountsService{DB: db}
	authTokensService := &services.AuthTokensService{
		SigningSecret: os.Getenv("AUTH_TOKEN_SIGNING_SECRET"),
	}
	organizationsService := &services.OrganizationsService{DB: db}
	membersService := &services.MembersService{DB: db}
	chatRoomsService := &services.ChatRoomsService{DB: db}
	messagesService := &services.MessagesService{DB: db}
	socketsService := &services.SocketsService{
		Server:            socketIoServer,
		AuthTokensService: authTokensService,
		AccountsService:   accountsService,
		ChatRoomsService:  chatRoomsService,
		MembersService:    membersService,
	}

	// Register the socket.io event handlers
	socketsService.Setup()

	//================================================================================
	// Setup the Gin HTTP router
	//================================================================================

	// Create the Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.GinMiddleware())

	// Configure CORS for the API
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Accept", "User-Agent", "Authorization")
	r.Use(cors.New(corsCfg))

	// Expose the Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create the API instance
	api := &v1.Server{
		AccountsService:      accountsService,
		AuthTokensService:    authTokensService,
		OrganizationsService: organizationsService,
		MembersService:       membersService,
		ChatRoomsService:     chatRoomsService,
		MessagesService:      messagesService,
		SocketsService:       socketsService,
	}

	// Mount the API routes
	api.Setup(r.Group("v1"))

	// Create a mux to serve both the HTTP and Socket.IO servers
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", socketIoServer)
	mux.Handle("/", r)

	// Run the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting server")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}

}

// setupLogging configures zerolog, pretty in dev and JSON everywhere else
func setupLogging(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "dev" {
		cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(cw).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// GetAllowedOrigins gets the slice of allowed CORS origins
func GetAllowedOrigins() []string {

	// Get the list of origins allowed
	env, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		return []string{}
	}

	// Split up the env value
	origins := []string{}
	for _, originRaw := range strings.Split(env, ",") {
		origins = append(origins, strings.TrimSpace(originRaw))
	}
	return origins

}

// checkOrigin creates an origin checker for the socket.io transports
func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == "*" || strings.EqualFold(allowed, origin) {
				return true
			}
		}
		return false
	}
}
