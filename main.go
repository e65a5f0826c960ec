package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/civic-guardian/civic-api/api"
	"github.com/civic-guardian/civic-api/geo"
	"github.com/civic-guardian/civic-api/store"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("civic")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// loadEngineConfig starts from the standard tables and thresholds and lets
// the config file override individual entries.
func loadEngineConfig() store.EngineConfig {
	cfg := store.DefaultEngineConfig()

	if viper.IsSet("engine.severities") {
		if err := viper.UnmarshalKey("engine.severities", &cfg.Severities); err != nil {
			log.Panicf("parse severity table with error: %s", err)
		}
	}
	if viper.IsSet("engine.poi_weights") {
		if err := viper.UnmarshalKey("engine.poi_weights", &cfg.POIWeights); err != nil {
			log.Panicf("parse poi weight table with error: %s", err)
		}
	}
	if viper.IsSet("engine.score") {
		if err := viper.UnmarshalKey("engine.score", &cfg.Params); err != nil {
			log.Panicf("parse score coefficients with error: %s", err)
		}
	}
	if viper.IsSet("engine.thresholds") {
		if err := viper.UnmarshalKey("engine.thresholds", &cfg.Thresholds); err != nil {
			log.Panicf("parse vote thresholds with error: %s", err)
		}
	}

	return cfg
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	// reverse-geocoding resolver for human-readable location names
	var resolver geo.LocationResolver
	if apiKey := viper.GetString("map.key"); apiKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Panicf("create maps client with error: %s", err)
		}
		resolver = geo.NewGeocodingLocationResolver(mapClient)
		log.WithField("prefix", "init").Info("Initialized geocoding location resolver")
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		loadEngineConfig(),
		resolver,
	)

	// Init http server
	server = api.NewServer(ormDB, mongoStore)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
