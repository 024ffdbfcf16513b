// 手动迁移持久化状态脚本
//
// 将档案/文档/测验三个集合从一个后端整体搬到另一个后端,
// 例如切换到 mysql 前先把 file 后端的历史数据导过去。
// 迁移按键整体覆盖,目标后端的旧数据会被替换。
//
// 用法: go run scripts/state_migrate.go -from file -to mysql

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"studymate_backend/internal/config"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/database"
	"studymate_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	from := flag.String("from", "", "源后端: memory/file/redis/mysql")
	to := flag.String("to", "", "目标后端: memory/file/redis/mysql")
	flag.Parse()

	if *from == "" || *to == "" {
		log.Fatal("必须同时指定 -from 与 -to")
	}
	if *from == *to {
		log.Fatal("源后端与目标后端不能相同")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	// yaml 解析不走 mapstructure 标签,file_path 这类下划线键需要补默认值
	if cfg.State.FilePath == "" {
		cfg.State.FilePath = "./data/state"
	}

	logger.InitLogger(&cfg)

	src := repository.NewStateRepository(buildStore(&cfg, *from))
	dst := repository.NewStateRepository(buildStore(&cfg, *to))

	ctx := context.Background()

	profile, err := src.LoadProfile(ctx)
	if err != nil {
		log.Fatalf("读取档案失败: %v", err)
	}
	documents, err := src.LoadDocuments(ctx)
	if err != nil {
		log.Fatalf("读取文档列表失败: %v", err)
	}
	assessments, err := src.LoadAssessments(ctx)
	if err != nil {
		log.Fatalf("读取测验列表失败: %v", err)
	}

	if err := dst.SaveProfile(ctx, profile); err != nil {
		log.Fatalf("写入档案失败: %v", err)
	}
	if err := dst.SaveDocuments(ctx, documents); err != nil {
		log.Fatalf("写入文档列表失败: %v", err)
	}
	if err := dst.SaveAssessments(ctx, assessments); err != nil {
		log.Fatalf("写入测验列表失败: %v", err)
	}

	log.Printf("迁移完成: 文档 %d 份, 测验 %d 份", len(documents), len(assessments))
}

// buildStore 按指定后端构建存储,仅在需要时建立外部连接。
func buildStore(cfg *config.Config, backend string) repository.KVStore {
	c := *cfg
	c.State.Backend = backend

	var (
		db  *gorm.DB
		rdb *redis.Client
		err error
	)

	switch backend {
	case util.StateBackendMySQL:
		db, err = database.InitDB(&c.Database)
		if err != nil {
			log.Fatalf("数据库连接失败: %v", err)
		}
	case util.StateBackendRedis:
		rdb, err = database.InitRedis(&c.Redis)
		if err != nil {
			log.Fatalf("Redis 连接失败: %v", err)
		}
	}

	return repository.NewKVStore(&c, db, rdb)
}
