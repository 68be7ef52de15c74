// Package context 提供应用级上下文：配置与日志记录器的组合
package context

import (
	"context"

	"github.com/yeisme/repoview/pkg/configs"
	"github.com/yeisme/repoview/pkg/utils/log"
)

// RepoviewContext 聚合一次命令执行所需的配置与日志记录器
type RepoviewContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
}

// InitRepoviewContext 加载配置并初始化日志记录器
// 命令行标志（debug/verbose/quiet）优先于配置文件中的对应项
func InitRepoviewContext(configPath string, debug, verbose, quiet bool) *RepoviewContext {
	ctx := context.Background()

	config, err := configs.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &RepoviewContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
	}
}
