package service

import "github.com/momnutri/backend/internal/models"

// BackupMealPlan returns the fixed plan served when generation fails and
// backup-data mode is on. The dishes are deliberately conservative choices
// that suit any trimester.
func BackupMealPlan() *GeneratedPlan {
	return &GeneratedPlan{
		Breakfast: &GeneratedMeal{
			Name:     "红枣燕麦粥配水煮蛋",
			Category: models.CategoryBreakfast,
			Ingredients: []models.Ingredient{
				{Name: "燕麦片", Amount: "50克"},
				{Name: "红枣", Amount: "4颗"},
				{Name: "鸡蛋", Amount: "1个"},
				{Name: "牛奶", Amount: "200毫升"},
			},
			PreparationTime: 5,
			CookingTime:     15,
			Steps: []string{
				"红枣去核切小块",
				"燕麦片加牛奶和适量清水，小火煮10分钟",
				"加入红枣再煮5分钟",
				"鸡蛋冷水下锅，水开后煮8分钟，剥壳即可",
			},
			Nutrition: &NutritionPayload{
				Calories: 380, Protein: 18, Fat: 12, Carbs: 52, Fiber: 6,
				Calcium: 280, Iron: 3.5, FolicAcid: 60, VitaminC: 2, VitaminE: 1.5,
			},
			Tips: []string{"燕麦富含膳食纤维，有助于预防孕期便秘"},
		},
		MorningSnack: &GeneratedMeal{
			Name:     "原味酸奶拌蓝莓",
			Category: models.CategorySnack,
			Ingredients: []models.Ingredient{
				{Name: "原味酸奶", Amount: "150克"},
				{Name: "蓝莓", Amount: "50克"},
			},
			PreparationTime: 3,
			CookingTime:     0,
			Steps: []string{
				"蓝莓洗净沥干",
				"倒入酸奶拌匀即可",
			},
			Nutrition: &NutritionPayload{
				Calories: 130, Protein: 6, Fat: 4, Carbs: 18, Fiber: 1.5,
				Calcium: 180, Iron: 0.3, FolicAcid: 8, VitaminC: 5, VitaminE: 0.5,
			},
			Tips: []string{"选择无糖酸奶更适合控制血糖"},
		},
		Lunch: &GeneratedMeal{
			Name:     "清蒸鲈鱼配西兰花糙米饭",
			Category: models.CategoryLunch,
			Ingredients: []models.Ingredient{
				{Name: "鲈鱼", Amount: "300克"},
				{Name: "西兰花", Amount: "150克"},
				{Name: "糙米", Amount: "80克"},
				{Name: "姜", Amount: "3片"},
				{Name: "葱", Amount: "1根"},
			},
			PreparationTime: 15,
			CookingTime:     20,
			Steps: []string{
				"糙米提前浸泡30分钟后入电饭煲蒸熟",
				"鲈鱼洗净，两面划刀，铺上姜片",
				"水开后将鱼放入蒸锅，大火蒸10分钟",
				"西兰花切小朵，沸水焯2分钟捞出",
				"鱼蒸好后撒葱丝，淋少量热油和蒸鱼豉油",
			},
			Nutrition: &NutritionPayload{
				Calories: 520, Protein: 42, Fat: 10, Carbs: 65, Fiber: 7,
				Calcium: 120, Iron: 2.8, FolicAcid: 110, VitaminC: 65, VitaminE: 2,
			},
			Tips: []string{"鲈鱼汞含量低，是孕期安全的优质蛋白来源", "西兰花焯水时间不宜过长，保留叶酸"},
		},
		AfternoonSnack: &GeneratedMeal{
			Name:     "核桃仁配苹果片",
			Category: models.CategorySnack,
			Ingredients: []models.Ingredient{
				{Name: "核桃仁", Amount: "20克"},
				{Name: "苹果", Amount: "1个"},
			},
			PreparationTime: 3,
			CookingTime:     0,
			Steps: []string{
				"苹果洗净切片",
				"搭配核桃仁食用",
			},
			Nutrition: &NutritionPayload{
				Calories: 210, Protein: 4, Fat: 13, Carbs: 22, Fiber: 4,
				Calcium: 30, Iron: 0.8, FolicAcid: 12, VitaminC: 6, VitaminE: 3,
			},
			Tips: []string{"核桃富含不饱和脂肪酸，有益胎儿大脑发育"},
		},
		Dinner: &GeneratedMeal{
			Name:     "番茄炖牛腩配菠菜面",
			Category: models.CategoryDinner,
			Ingredients: []models.Ingredient{
				{Name: "牛腩", Amount: "200克"},
				{Name: "番茄", Amount: "2个"},
				{Name: "菠菜", Amount: "100克"},
				{Name: "面条", Amount: "100克"},
			},
			PreparationTime: 15,
			CookingTime:     60,
			Steps: []string{
				"牛腩切块，冷水下锅焯去血沫",
				"番茄去皮切块，与牛腩一同入锅",
				"加热水没过食材，小火炖50分钟至牛腩软烂",
				"另起锅煮面条，菠菜焯水后放入",
				"将番茄牛腩连汤浇在面上即可",
			},
			Nutrition: &NutritionPayload{
				Calories: 560, Protein: 38, Fat: 16, Carbs: 68, Fiber: 6,
				Calcium: 110, Iron: 6.5, FolicAcid: 130, VitaminC: 30, VitaminE: 2.5,
			},
			Tips: []string{"牛肉和菠菜同食补铁，预防孕期贫血"},
		},
		Summary: &NutritionPayload{
			Calories: 1800, Protein: 108, Fat: 55, Carbs: 225, Fiber: 24.5,
			Calcium: 720, Iron: 13.9, FolicAcid: 320, VitaminC: 108, VitaminE: 9.5,
		},
	}
}
