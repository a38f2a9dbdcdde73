package search

// Fruits is the candidate set used when no other source is configured.
var Fruits = []string{
	"Apple", "Apricot", "Avocado", "Banana", "Bilberry", "Blackberry",
	"Blackcurrant", "Blueberry", "Boysenberry", "Cantaloupe", "Cherimoya",
	"Cherry", "Clementine", "Cloudberry", "Coconut", "Cranberry", "Currant",
	"Damson", "Date", "Dragonfruit", "Durian", "Elderberry", "Feijoa", "Fig",
	"Goji berry", "Gooseberry", "Grape", "Grapefruit", "Guava", "Honeydew",
	"Huckleberry", "Jackfruit", "Jambul", "Jujube", "Kiwifruit", "Kumquat",
	"Lemon", "Lime", "Loquat", "Longan", "Lychee", "Mandarine", "Mango",
	"Mangosteen", "Marionberry", "Melon", "Mulberry", "Nectarine", "Olive",
	"Orange", "Papaya", "Passionfruit", "Peach", "Pear", "Persimmon",
	"Physalis", "Pineapple", "Plum", "Pomegranate", "Pomelo", "Quince",
	"Raisin", "Rambutan", "Raspberry", "Redcurrant", "Salal berry",
	"Satsuma", "Star fruit", "Strawberry", "Tamarillo", "Tangerine",
	"Ugli fruit", "Watermelon", "Yuzu",
}
