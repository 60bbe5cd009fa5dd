//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链：
//
//	*gin.Engine
//	 ├─ *handler.BookHandler  ← book.Service + *appbook.BookPageUseCase
//	 ├─ *handler.LabelHandler ← book.Service + *appbook.LabelBooksUseCase
//	 └─ *zerolog.Logger
//	book.Service ← book.Repository ← *mysql.Scope ← *gorm.DB ← *config.Config

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/rs/zerolog"

	appbook "github.com/xiebiao/bookrec/internal/application/book"
	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/internal/infrastructure/config"
	"github.com/xiebiao/bookrec/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookrec/internal/interface/http/handler"
	"github.com/xiebiao/bookrec/internal/interface/http/router"
	"github.com/xiebiao/bookrec/pkg/logger"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	mysql.NewDB,    // MySQL连接（带cleanup）
	mysql.NewScope, // 连接作用域
	provideLogger,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewBookPageUseCase,
	appbook.NewLabelBooksUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewLabelHandler,
)

// provideLogger 提供全局zerolog实例（main中已经Init过）
func provideLogger() *zerolog.Logger {
	return logger.Get()
}

// InitializeApp 初始化整个应用
// 返回的cleanup会关闭数据库连接池
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		router.NewRouter,
	)
	return nil, nil, nil
}
