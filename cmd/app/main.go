package main

import (
	"os"

	"github.com/blogapp/blogapp_backend/internal/config"
	"github.com/blogapp/blogapp_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// ログ設定
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db)

	// サーバー起動
	logrus.WithField("port", cfg.Server.Port).Info("サーバーを開始しています")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logrus.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
