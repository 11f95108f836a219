// Seeds the food safety reference table. Safe to re-run: existing entries
// are matched by name and left untouched.
package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/momnutri/backend/config"
	"github.com/momnutri/backend/internal/database"
	"github.com/momnutri/backend/internal/models"
)

var foods = []models.FoodSafety{
	{
		Name:        "蓝莓",
		Category:    "fruits",
		SafetyLevel: models.SafetySafe,
		Description: "富含抗氧化物质和维生素C的水果",
		Reason:      "蓝莓富含抗氧化剂，有助于孕妇维持健康的免疫系统和胎儿发育。",
		Tips:        models.JSONBStringArray{"选择新鲜或冷冻的蓝莓，避免加糖罐装蓝莓", "食用前彻底清洗"},
	},
	{
		Name:        "三文鱼",
		Category:    "seafood",
		SafetyLevel: models.SafetyModerate,
		Description: "富含omega-3脂肪酸的鱼类",
		Reason:      "熟透的三文鱼可以食用，但孕期应避免生鱼片。三文鱼含有的DHA对胎儿脑部发育有益，但需要注意汞含量。",
		Tips:        models.JSONBStringArray{"选择低汞含量的野生三文鱼", "确保烹饪至内部温度达到63°C", "每周食用不超过2-3次"},
	},
	{
		Name:         "生食寿司",
		Category:     "seafood",
		SafetyLevel:  models.SafetyUnsafe,
		Description:  "日式料理，通常包含生鱼片",
		Reason:       "生鱼可能含有寄生虫和有害细菌，如李斯特菌，可能导致严重感染。",
		Alternatives: models.JSONBStringArray{"熟食寿司", "素食寿司", "蒸鱼"},
		Tips:         models.JSONBStringArray{"可以选择完全煮熟的鱼类寿司", "避免海鲜类生食"},
	},
	{
		Name:         "咖啡",
		Category:     "drinks",
		SafetyLevel:  models.SafetyCaution,
		Description:  "含咖啡因的饮料",
		Reason:       "适量咖啡因（每天不超过200mg，约一杯中等咖啡）对大多数孕妇来说是安全的，但过量可能增加流产风险。",
		Alternatives: models.JSONBStringArray{"脱因咖啡", "红茶", "菊花茶"},
		Tips:         models.JSONBStringArray{"限制每日咖啡因摄入量不超过200mg", "可考虑改喝无咖啡因饮品"},
	},
	{
		Name:        "菠菜",
		Category:    "vegetables",
		SafetyLevel: models.SafetySafe,
		Description: "富含叶酸和铁的绿叶蔬菜",
		Reason:      "菠菜富含叶酸，有助于预防胎儿神经管缺陷。同时富含铁质，有助于预防贫血。",
		Tips:        models.JSONBStringArray{"食用前彻底清洗", "轻微烹煮可保留更多营养"},
	},
	{
		Name:        "蜂蜜",
		Category:    "other",
		SafetyLevel: models.SafetySafe,
		Description: "天然甜味剂",
		Reason:      "蜂蜜对成人是安全的，但不应给1岁以下婴儿食用。孕妇食用是安全的，但要确保是经过巴氏杀菌的产品。",
		Tips:        models.JSONBStringArray{"选择可靠品牌的经过处理的蜂蜜", "作为糖的健康替代品适量食用"},
	},
	{
		Name:        "鸡蛋",
		Category:    "other",
		SafetyLevel: models.SafetyModerate,
		Description: "优质蛋白质来源",
		Reason:      "全熟的鸡蛋是安全的，但未煮熟的鸡蛋可能含有沙门氏菌。",
		Tips:        models.JSONBStringArray{"确保鸡蛋完全煮熟，蛋黄和蛋白都应该变硬", "避免生鸡蛋或半熟鸡蛋制品，如荷包蛋（溏心）、蛋奶酱、生鸡蛋拌沙拉酱等"},
	},
	{
		Name:         "酒精饮料",
		Category:     "drinks",
		SafetyLevel:  models.SafetyUnsafe,
		Description:  "含酒精的饮料如啤酒、红酒、白酒等",
		Reason:       "没有已知的孕期酒精安全摄入量。酒精会穿过胎盘影响胎儿发育，可能导致胎儿酒精谱系障碍。",
		Alternatives: models.JSONBStringArray{"无酒精啤酒", "果汁", "气泡水"},
		Tips:         models.JSONBStringArray{"整个孕期应完全避免酒精", "社交场合可选择无酒精饮料替代"},
	},
	{
		Name:        "西兰花",
		Category:    "vegetables",
		SafetyLevel: models.SafetySafe,
		Description: "十字花科蔬菜，富含维生素C和叶酸",
		Reason:      "西兰花富含多种维生素和矿物质，尤其是叶酸、钙和铁，这些对胎儿发育和孕妇健康非常重要。",
		Tips:        models.JSONBStringArray{"轻微蒸煮以保留更多营养", "可以加入各种炒菜或沙拉中增加营养"},
	},
	{
		Name:         "软奶酪",
		Category:     "dairy",
		SafetyLevel:  models.SafetyUnsafe,
		Description:  "如布里干酪、卡门培尔、菲达奶酪等",
		Reason:       "非巴氏杀菌的软奶酪可能含有李斯特菌，会导致流产或死胎。",
		Alternatives: models.JSONBStringArray{"硬奶酪", "经过巴氏杀菌的奶酪", "奶酪干酪"},
		Tips:         models.JSONBStringArray{"选择硬质奶酪如切达奶酪", "确保所有奶酪产品都经过巴氏杀菌"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	created := 0
	for i := range foods {
		food := foods[i]
		var existing models.FoodSafety
		err := db.Where("name = ?", food.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check %s: %v", food.Name, err)
		}
		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("Failed to seed %s: %v", food.Name, err)
		}
		created++
	}

	log.Printf("Seeded %d food safety entries (%d already present)", created, len(foods)-created)
}
