// File: cmd/service/main.go
// @title        Loan Payback Prediction API
// @version      1.0
// @description  貸款償還預測服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"loan-payback/internal/api"
	"loan-payback/internal/cache"
	"loan-payback/internal/database"
	"loan-payback/internal/router"
	"loan-payback/internal/scorer"
	"loan-payback/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "loan-payback/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// StrictBinder 解析 JSON 請求時拒絕未知欄位，其餘型別交回預設 binder
type StrictBinder struct{}

func (StrictBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) && req.ContentLength != 0 {
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
		}
		return nil
	}
	return (&echo.DefaultBinder{}).Bind(i, c)
}

var (
	godotenvLoad    = godotenv.Load
	newPool         = func(url string, maxConns int32) database.DB { return database.NewPool(url, maxConns) }
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	loadScorerFn    = scorer.Load
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	// .env 存在時先載入，環境變數仍以實際環境優先
	_ = godotenvLoad()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		return fmt.Errorf("環境變數 MODEL_PATH 未設定")
	}
	metaPath := os.Getenv("MODEL_META_PATH")
	if metaPath == "" {
		return fmt.Errorf("環境變數 MODEL_META_PATH 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	poolMax := int32(database.DefaultMaxConns)
	if v := os.Getenv("DATABASE_POOL_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 DATABASE_POOL_MAX: %v", err)
		}
		poolMax = int32(n)
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = n
	}

	addr := os.Getenv("SERVICE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// 模型啟動時載入一次，之後唯讀
	scr, err := loadScorerFn(modelPath, metaPath)
	if err != nil {
		return fmt.Errorf("模型載入失敗: %v", err)
	}

	// 連線池延遲到第一次使用才建立，資料庫晚啟動不會拖垮服務
	db := newPool(dbURL, poolMax)
	defer db.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		log.Printf("Migration 未執行（資料庫尚未就緒？）: %v", err)
	}

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Binder = StrictBinder{}
	e.Validator = &CustomValidator{validator: api.NewValidator()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, redis, scr, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
