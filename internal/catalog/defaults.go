package catalog

import (
	"math/rand"

	"resto-pos/internal/model"
)

// Open source food images from Wikimedia Commons.
var foodImages = []string{
	"https://upload.wikimedia.org/wikipedia/commons/thumb/4/4a/Appam_with_stew.jpg/400px-Appam_with_stew.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/5/5d/Puttu_kadala.jpg/400px-Puttu_kadala.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/4/4c/Dosa_%281%29.jpg/400px-Dosa_%281%29.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/6/68/Idli_with_Vada_and_Sambar.jpg/400px-Idli_with_Vada_and_Sambar.jpg",
}

var snackImages = []string{
	"https://upload.wikimedia.org/wikipedia/commons/thumb/f/f4/Banana_chips.jpg/400px-Banana_chips.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/9/9e/Murukku.jpg/400px-Murukku.jpg",
	"https://upload.wikimedia.org/wikipedia/commons/thumb/a/a0/Achappam.jpg/400px-Achappam.jpg",
}

// defaultImage picks a random category-appropriate placeholder.
func defaultImage(category string) model.Image {
	images := foodImages
	if category == "snacks" {
		images = snackImages
	}
	return model.RemoteImage(images[rand.Intn(len(images))])
}

// defaultItems is the fixed starter menu used to seed an empty catalog.
func defaultItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:          "1",
			Name:        "Appam",
			Description: "Soft and fluffy rice pancakes",
			Price:       45,
			Category:    "foods",
			Image:       model.RemoteImage(foodImages[0]),
		},
		{
			ID:          "2",
			Name:        "Puttu",
			Description: "Steamed rice cake with coconut",
			Price:       50,
			Category:    "foods",
			Image:       model.RemoteImage(foodImages[1]),
		},
		{
			ID:          "3",
			Name:        "Dosa",
			Description: "Crispy fermented crepe",
			Price:       40,
			Category:    "foods",
			Image:       model.RemoteImage(foodImages[2]),
		},
		{
			ID:          "4",
			Name:        "Idli",
			Description: "Steamed rice cakes with sambar",
			Price:       35,
			Category:    "foods",
			Image:       model.RemoteImage(foodImages[3]),
		},
		{
			ID:          "5",
			Name:        "Banana Chips",
			Description: "Crispy fried banana chips",
			Price:       60,
			Category:    "snacks",
			Image:       model.RemoteImage(snackImages[0]),
		},
		{
			ID:          "6",
			Name:        "Murukku",
			Description: "Crunchy spiral-shaped snack",
			Price:       55,
			Category:    "snacks",
			Image:       model.RemoteImage(snackImages[1]),
		},
		{
			ID:          "7",
			Name:        "Achappam",
			Description: "Crispy flower-shaped snack",
			Price:       50,
			Category:    "snacks",
			Image:       model.RemoteImage(snackImages[2]),
		},
		{
			ID:          "8",
			Name:        "Vegetable Stew",
			Description: "Coconut milk curry",
			Price:       65,
			Category:    "foods",
			Image:       model.RemoteImage("https://upload.wikimedia.org/wikipedia/commons/thumb/1/14/Vegetable_stew.jpg/400px-Vegetable_stew.jpg"),
		},
	}
}
