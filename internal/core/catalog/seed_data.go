package catalog

import "recipe-nutrition/internal/core/nutrition"

// defaultMassConversions 每筆內建記錄都帶有的重量換算，記錄自身的換算優先
var defaultMassConversions = map[string]float64{
	"g":  0.01,
	"kg": 10,
	"oz": 0.2835,
	"lb": 4.53,
}

func seedRecord(name string, cal, pro, fat, carb float64, unit string, aliases []string, conversions map[string]float64) nutrition.Ingredient {
	merged := make(map[string]float64, len(defaultMassConversions)+len(conversions))
	for k, v := range defaultMassConversions {
		merged[k] = v
	}
	for k, v := range conversions {
		merged[k] = v
	}
	return nutrition.Ingredient{
		Name:            name,
		CaloriesPerUnit: cal,
		ProteinPerUnit:  pro,
		FatPerUnit:      fat,
		CarbsPerUnit:    carb,
		StandardUnit:    unit,
		Aliases:         append([]string{name}, aliases...),
		Conversions:     merged,
	}
}

// SeedData 內建的食材營養目錄
func SeedData() []nutrition.Ingredient {
	return []nutrition.Ingredient{
		// 蔬菜
		seedRecord("tomato", 18, 0.9, 0.2, 3.9, "100g", []string{"tomatoes"}, map[string]float64{"medium": 1.2, "cup": 1.8, "slice": 0.2}),
		seedRecord("onion", 40, 1.1, 0.1, 9.3, "100g", []string{"onions"}, map[string]float64{"medium": 1.1, "cup": 1.6}),
		seedRecord("garlic", 149, 6.4, 0.5, 33, "100g", nil, map[string]float64{"clove": 0.03, "bulb": 0.3, "tsp": 0.03}),
		seedRecord("potato", 77, 2, 0.1, 17, "100g", []string{"potatoes"}, map[string]float64{"medium": 1.5, "cup": 1.5}),
		seedRecord("carrot", 41, 0.9, 0.2, 10, "100g", []string{"carrots"}, map[string]float64{"medium": 0.6, "cup": 1.2}),
		seedRecord("celery", 16, 0.7, 0.2, 3, "100g", nil, map[string]float64{"stalk": 0.4, "cup": 1.0}),
		seedRecord("bell pepper", 20, 0.9, 0.2, 4.6, "100g", []string{"capsicum"}, map[string]float64{"medium": 1.2, "cup": 1.5}),
		seedRecord("broccoli", 34, 2.8, 0.4, 7, "100g", nil, map[string]float64{"head": 4.0, "cup": 0.9}),
		seedRecord("cauliflower", 25, 1.9, 0.3, 5, "100g", nil, map[string]float64{"head": 5.0, "cup": 1.0}),
		seedRecord("zucchini", 17, 1.2, 0.3, 3.1, "100g", nil, map[string]float64{"medium": 2.0, "cup": 1.2}),
		seedRecord("eggplant", 25, 1, 0.2, 6, "100g", []string{"aubergine"}, map[string]float64{"medium": 4.5, "cup": 0.8}),
		seedRecord("spinach", 23, 2.9, 0.4, 3.6, "100g", nil, map[string]float64{"cup": 0.3, "bunch": 3.4}),
		seedRecord("lettuce", 15, 1.4, 0.2, 2.9, "100g", nil, map[string]float64{"head": 3.0, "cup": 0.4}),
		seedRecord("cabbage", 25, 1.3, 0.1, 6, "100g", nil, map[string]float64{"head": 9.0, "cup": 0.9}),
		seedRecord("cucumber", 15, 0.7, 0.1, 3.6, "100g", nil, map[string]float64{"medium": 2.0, "cup": 1.2}),
		seedRecord("mushroom", 22, 3.1, 0.3, 3.3, "100g", []string{"mushrooms"}, map[string]float64{"cup": 0.7}),
		seedRecord("corn", 86, 3.2, 1.2, 19, "100g", nil, map[string]float64{"ear": 0.9, "cup": 1.6}),
		seedRecord("peas", 81, 5, 0.4, 14, "100g", nil, map[string]float64{"cup": 1.4}),
		seedRecord("green beans", 31, 1.8, 0.2, 7, "100g", nil, map[string]float64{"cup": 1.0}),
		seedRecord("asparagus", 20, 2.2, 0.1, 4, "100g", nil, map[string]float64{"spear": 0.2, "bunch": 4.0}),
		seedRecord("brussels sprouts", 43, 3.4, 0.3, 9, "100g", nil, map[string]float64{"cup": 0.9}),
		seedRecord("kale", 49, 4.3, 0.9, 9, "100g", nil, map[string]float64{"cup": 0.67}),
		seedRecord("bok choy", 13, 1.5, 0.2, 2, "100g", nil, map[string]float64{"head": 1.5, "cup": 0.7}),
		seedRecord("leek", 61, 1.5, 0.3, 14, "100g", nil, map[string]float64{"stalk": 0.9}),
		seedRecord("radish", 16, 0.7, 0.1, 3.4, "100g", nil, map[string]float64{"medium": 0.05, "cup": 1.1}),
		seedRecord("beet", 43, 1.6, 0.2, 10, "100g", []string{"beetroot"}, map[string]float64{"medium": 0.8, "cup": 1.3}),
		seedRecord("sweet potato", 86, 1.6, 0.1, 20, "100g", nil, map[string]float64{"medium": 1.3, "cup": 1.3}),
		seedRecord("pumpkin", 26, 1, 0.1, 6.5, "100g", nil, map[string]float64{"cup": 1.1}),
		seedRecord("squash", 45, 1, 0.1, 12, "100g", nil, map[string]float64{"medium": 4.0, "cup": 2.0}),

		// 蛋白質
		seedRecord("chicken", 165, 31, 3.6, 0, "100g", []string{"chicken breast"}, map[string]float64{"breast": 2.0, "cup": 1.4}),
		seedRecord("beef", 250, 26, 17, 0, "100g", []string{"ground beef", "steak"}, map[string]float64{"patty": 1.5, "steak": 2.5}),
		seedRecord("pork", 242, 27, 14, 0, "100g", []string{"pork chop"}, map[string]float64{"chop": 1.5}),
		seedRecord("lamb", 294, 25, 21, 0, "100g", nil, map[string]float64{"chop": 1.2}),
		seedRecord("turkey", 189, 29, 7, 0, "100g", nil, map[string]float64{"slice": 0.3}),
		seedRecord("duck", 337, 19, 28, 0, "100g", nil, map[string]float64{"breast": 2.0}),
		seedRecord("salmon", 208, 20, 13, 0, "100g", nil, map[string]float64{"fillet": 1.5}),
		seedRecord("tuna", 132, 28, 1, 0, "100g", nil, map[string]float64{"can": 1.5, "steak": 1.7}),
		seedRecord("shrimp", 99, 24, 0.3, 0.2, "100g", []string{"prawns"}, map[string]float64{"piece": 0.15}),
		seedRecord("cod", 82, 18, 0.7, 0, "100g", nil, map[string]float64{"fillet": 1.5}),
		seedRecord("tilapia", 96, 20, 1.7, 0, "100g", nil, map[string]float64{"fillet": 1.2}),
		seedRecord("crab", 83, 18, 0.7, 0, "100g", []string{"crab meat"}, map[string]float64{"cup": 1.3}),
		seedRecord("lobster", 89, 19, 0.9, 0, "100g", nil, map[string]float64{"tail": 1.5}),
		seedRecord("tofu", 76, 8, 4.8, 1.9, "100g", nil, map[string]float64{"block": 3.0, "piece": 0.5}),
		seedRecord("tempeh", 192, 20, 11, 8, "100g", nil, map[string]float64{"cup": 1.6}),
		seedRecord("eggs", 155, 13, 11, 1.1, "100g", []string{"egg"}, map[string]float64{"whole": 0.5, "large": 0.5}),
		seedRecord("bacon", 541, 37, 42, 1.4, "100g", nil, map[string]float64{"strip": 0.15, "slice": 0.15}),
		seedRecord("sausage", 300, 12, 27, 2, "100g", nil, map[string]float64{"link": 0.5}),
		seedRecord("ham", 145, 21, 6, 1.5, "100g", nil, map[string]float64{"slice": 0.3}),

		// 乳製品
		seedRecord("milk", 42, 3.4, 1, 5, "100ml", nil, map[string]float64{"cup": 2.45, "tbsp": 0.15}),
		seedRecord("butter", 717, 0.9, 81, 0.1, "100g", nil, map[string]float64{"stick": 1.13, "tbsp": 0.14}),
		seedRecord("cheese", 403, 25, 33, 1.3, "100g", []string{"cheddar"}, map[string]float64{"slice": 0.28, "cup": 1.1}),
		seedRecord("cream", 340, 2.8, 36, 2.7, "100ml", []string{"heavy cream"}, map[string]float64{"cup": 2.4, "tbsp": 0.15}),
		seedRecord("yogurt", 59, 10, 0.4, 3.6, "100g", nil, map[string]float64{"cup": 2.45, "pot": 1.25}),
		seedRecord("sour cream", 193, 2.1, 19, 2.9, "100g", nil, map[string]float64{"tbsp": 0.15, "cup": 2.3}),
		seedRecord("mozzarella", 280, 28, 17, 3.1, "100g", nil, map[string]float64{"slice": 0.2, "cup": 1.1}),
		seedRecord("parmesan", 431, 38, 29, 4.1, "100g", nil, map[string]float64{"tbsp": 0.05}),
		seedRecord("feta", 264, 14, 21, 4, "100g", nil, map[string]float64{"cup": 1.5, "block": 2.0}),
		seedRecord("ricotta", 174, 11, 13, 3, "100g", nil, map[string]float64{"cup": 2.5}),
		seedRecord("cream cheese", 342, 6, 34, 4, "100g", nil, map[string]float64{"tbsp": 0.15, "block": 2.2}),

		// 穀物與麵食
		seedRecord("rice", 130, 2.7, 0.3, 28, "100g", nil, map[string]float64{"cup": 1.95, "bowl": 2.0}),
		seedRecord("pasta", 131, 5, 1.1, 25, "100g", []string{"noodles"}, map[string]float64{"cup": 1.4}),
		seedRecord("spaghetti", 371, 13, 1.5, 75, "100g", nil, map[string]float64{"serving": 0.8}),
		seedRecord("bread", 265, 9, 3.2, 49, "100g", nil, map[string]float64{"slice": 0.3, "piece": 0.8}),
		seedRecord("flour", 364, 10, 1, 76, "100g", nil, map[string]float64{"cup": 1.25, "tbsp": 0.08}),
		seedRecord("quinoa", 120, 4.4, 1.9, 21, "100g", nil, map[string]float64{"cup": 1.85}),
		seedRecord("oats", 389, 16.9, 6.9, 66, "100g", nil, map[string]float64{"cup": 0.9}),
		seedRecord("couscous", 112, 3.8, 0.2, 23, "100g", nil, map[string]float64{"cup": 1.7}),
		seedRecord("barley", 123, 2.3, 0.4, 28, "100g", nil, map[string]float64{"cup": 1.8}),

		// 豆類與堅果
		seedRecord("lentils", 116, 9, 0.4, 20, "100g", nil, map[string]float64{"cup": 2.0}),
		seedRecord("chickpeas", 164, 9, 2.6, 27, "100g", nil, map[string]float64{"cup": 1.6, "can": 4.0}),
		seedRecord("black beans", 132, 9, 0.5, 24, "100g", nil, map[string]float64{"cup": 1.7}),
		seedRecord("kidney beans", 127, 9, 0.5, 23, "100g", nil, map[string]float64{"cup": 1.8}),
		seedRecord("almonds", 579, 21, 50, 22, "100g", nil, map[string]float64{"cup": 1.4, "tbsp": 0.09}),
		seedRecord("walnuts", 654, 15, 65, 14, "100g", nil, map[string]float64{"cup": 1.2}),
		seedRecord("cashews", 553, 18, 44, 30, "100g", nil, map[string]float64{"cup": 1.3}),
		seedRecord("peanuts", 567, 26, 49, 16, "100g", nil, map[string]float64{"cup": 1.46}),
		seedRecord("pine nuts", 673, 14, 68, 13, "100g", nil, map[string]float64{"tbsp": 0.1}),

		// 水果
		seedRecord("lemon", 29, 1.1, 0.3, 9, "100g", nil, map[string]float64{"whole": 0.6, "juice": 0.5}),
		seedRecord("lime", 30, 0.7, 0.2, 11, "100g", nil, map[string]float64{"whole": 0.6, "juice": 0.4}),
		seedRecord("orange", 47, 0.9, 0.1, 12, "100g", nil, map[string]float64{"medium": 1.3}),
		seedRecord("apple", 52, 0.3, 0.2, 14, "100g", nil, map[string]float64{"medium": 1.8}),
		seedRecord("banana", 89, 1.1, 0.3, 23, "100g", nil, map[string]float64{"medium": 1.2}),
		seedRecord("strawberry", 32, 0.7, 0.3, 7.7, "100g", nil, map[string]float64{"cup": 1.5}),
		seedRecord("blueberry", 57, 0.7, 0.3, 14, "100g", nil, map[string]float64{"cup": 1.5}),
		seedRecord("mango", 60, 0.8, 0.4, 15, "100g", nil, map[string]float64{"whole": 3.3, "cup": 1.6}),
		seedRecord("pineapple", 50, 0.5, 0.1, 13, "100g", nil, map[string]float64{"cup": 1.6}),
		seedRecord("avocado", 160, 2, 15, 9, "100g", nil, map[string]float64{"whole": 2.0, "cup": 1.5}),
		seedRecord("coconut", 354, 3.3, 33, 15, "100g", nil, map[string]float64{"cup": 0.8}),

		// 香草與香料
		seedRecord("basil", 23, 3, 0.6, 2.7, "100g", nil, map[string]float64{"cup": 0.1, "bunch": 0.5}),
		seedRecord("parsley", 36, 3, 0.8, 6, "100g", nil, map[string]float64{"cup": 0.1, "bunch": 0.5}),
		seedRecord("cilantro", 23, 2, 0.5, 3.7, "100g", nil, map[string]float64{"cup": 0.1, "bunch": 0.5}),
		seedRecord("mint", 70, 3.8, 0.9, 15, "100g", nil, map[string]float64{"cup": 0.1}),
		seedRecord("rosemary", 131, 3.3, 5.9, 20, "100g", nil, map[string]float64{"sprig": 0.02}),
		seedRecord("thyme", 101, 5.6, 1.7, 24, "100g", nil, map[string]float64{"sprig": 0.01}),
		seedRecord("ginger", 80, 1.8, 0.8, 18, "100g", nil, map[string]float64{"thumb": 0.2, "tsp": 0.02}),
		seedRecord("salt", 0, 0, 0, 0, "100g", nil, map[string]float64{"tsp": 0.06}),
		seedRecord("black pepper", 251, 10, 3, 64, "100g", nil, map[string]float64{"tsp": 0.02}),
		seedRecord("paprika", 282, 14, 13, 54, "100g", nil, map[string]float64{"tsp": 0.02}),
		seedRecord("cumin", 375, 18, 22, 44, "100g", nil, map[string]float64{"tsp": 0.02}),
		seedRecord("cinnamon", 247, 4, 1.2, 81, "100g", nil, map[string]float64{"tsp": 0.02, "stick": 0.05}),
		seedRecord("turmeric", 354, 8, 10, 65, "100g", nil, map[string]float64{"tsp": 0.02}),

		// 調味料
		seedRecord("olive oil", 884, 0, 100, 0, "100ml", nil, map[string]float64{"tbsp": 0.14, "tsp": 0.05}),
		seedRecord("vegetable oil", 884, 0, 100, 0, "100ml", nil, map[string]float64{"tbsp": 0.14}),
		seedRecord("sesame oil", 884, 0, 100, 0, "100ml", nil, map[string]float64{"tbsp": 0.14}),
		seedRecord("soy sauce", 53, 6, 0, 5, "100ml", nil, map[string]float64{"tbsp": 0.16}),
		seedRecord("fish sauce", 35, 5, 0, 3, "100ml", nil, map[string]float64{"tbsp": 0.18}),
		seedRecord("vinegar", 18, 0, 0, 0.1, "100ml", nil, map[string]float64{"tbsp": 0.15}),
		seedRecord("ketchup", 101, 1, 0, 27, "100g", nil, map[string]float64{"tbsp": 0.15}),
		seedRecord("mayonnaise", 680, 1, 75, 1, "100g", nil, map[string]float64{"tbsp": 0.14}),
		seedRecord("mustard", 66, 4, 3, 6, "100g", nil, map[string]float64{"tbsp": 0.15}),
		seedRecord("honey", 304, 0.3, 0, 82, "100g", nil, map[string]float64{"tbsp": 0.21, "cup": 3.4}),
		seedRecord("maple syrup", 260, 0, 0, 67, "100g", nil, map[string]float64{"tbsp": 0.2, "cup": 3.2}),
		seedRecord("sugar", 387, 0, 0, 100, "100g", []string{"white sugar"}, map[string]float64{"tbsp": 0.12, "cup": 2.0}),
		seedRecord("brown sugar", 380, 0, 0, 98, "100g", nil, map[string]float64{"tbsp": 0.12, "cup": 2.0}),

		// 亞洲食材
		seedRecord("lemongrass", 99, 1.8, 0.5, 25, "100g", nil, map[string]float64{"stalk": 0.3}),
		seedRecord("galangal", 71, 1, 1, 15, "100g", nil, map[string]float64{"thumb": 0.2}),
		seedRecord("miso paste", 198, 12, 6, 25, "100g", nil, map[string]float64{"tbsp": 0.18}),
		seedRecord("gochujang", 230, 5, 2, 45, "100g", nil, map[string]float64{"tbsp": 0.18}),
		seedRecord("coconut milk", 230, 2.3, 24, 6, "100ml", nil, map[string]float64{"cup": 2.4, "can": 4.0}),
		seedRecord("kimchi", 15, 1.1, 0.5, 2.4, "100g", nil, map[string]float64{"cup": 1.5}),

		// 烘焙
		seedRecord("baking powder", 53, 0, 0, 28, "100g", nil, map[string]float64{"tsp": 0.04}),
		seedRecord("baking soda", 0, 0, 0, 0, "100g", nil, map[string]float64{"tsp": 0.04}),
		seedRecord("yeast", 325, 40, 7, 41, "100g", nil, map[string]float64{"tsp": 0.03, "packet": 0.07}),
		seedRecord("vanilla extract", 288, 0, 0, 13, "100ml", nil, map[string]float64{"tsp": 0.04}),
		seedRecord("cocoa powder", 228, 20, 14, 58, "100g", nil, map[string]float64{"cup": 0.86}),
		seedRecord("chocolate chips", 479, 4, 28, 63, "100g", nil, map[string]float64{"cup": 1.7}),
		seedRecord("cornstarch", 381, 0.3, 0.1, 91, "100g", nil, map[string]float64{"tbsp": 0.08}),

		// 其他
		seedRecord("stock", 5, 0.5, 0.1, 0.5, "100ml", []string{"broth"}, map[string]float64{"cup": 2.4}),
		seedRecord("wine", 82, 0.1, 0, 2.6, "100ml", nil, map[string]float64{"cup": 2.4}),
		seedRecord("beer", 43, 0.5, 0, 3.6, "100ml", nil, map[string]float64{"can": 3.3}),
		seedRecord("tomato paste", 82, 4, 0.5, 19, "100g", nil, map[string]float64{"tbsp": 0.16}),
		seedRecord("tomato sauce", 29, 1.3, 0.2, 5, "100g", nil, map[string]float64{"cup": 2.45}),
		seedRecord("olives", 115, 0.8, 10.7, 6, "100g", nil, map[string]float64{"cup": 1.3}),
		seedRecord("sun-dried tomatoes", 258, 14, 3, 56, "100g", nil, map[string]float64{"cup": 0.5}),
		seedRecord("anchovies", 210, 29, 10, 0, "100g", nil, map[string]float64{"fillet": 0.04}),
		seedRecord("capers", 23, 2, 0.9, 5, "100g", nil, map[string]float64{"tbsp": 0.09}),
	}
}
