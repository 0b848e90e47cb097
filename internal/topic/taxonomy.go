// Package topic assigns coarse subject tags to vocabulary items from their
// English gloss.
package topic

// Category is a topic tag and the gloss substrings that trigger it.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultTaxonomy returns the built-in categories in match priority order.
func DefaultTaxonomy() []Category {
	return []Category{
		{
			Name: "family",
			Keywords: []string{
				"father", "dad", "mother", "mom", "parents", "parent", "son", "daughter",
				"brother", "sister", "aunt", "uncle", "husband", "wife", "spouse",
				"family", "child", "baby",
			},
		},
		{
			Name: "time",
			Keywords: []string{
				"day", "time", "hour", "minute", "year", "month", "week", "today",
				"tomorrow", "yesterday", "morning", "evening", "night", "o'clock", "noon",
			},
		},
		{
			Name: "food",
			Keywords: []string{
				"eat", "drink", "food", "tea", "coffee", "rice", "bread", "meat",
				"vegetable", "fruit", "dish", "soup", "noodles", "bun",
			},
		},
		{
			Name: "education",
			Keywords: []string{
				"school", "student", "teacher", "class", "study", "learn", "university",
				"college", "homework",
			},
		},
		{
			Name:     "work",
			Keywords: []string{"work", "job", "office", "company", "business", "manager"},
		},
		{
			Name: "travel",
			Keywords: []string{
				"travel", "trip", "car", "bus", "train", "taxi", "airport", "ticket",
				"hotel", "plane", "subway",
			},
		},
		{
			Name:     "health",
			Keywords: []string{"doctor", "medicine", "health", "sick", "illness", "hospital", "pain"},
		},
		{
			Name: "social",
			Keywords: []string{
				"friend", "meet", "help", "thanks", "sorry", "welcome", "please",
				"together", "party",
			},
		},
		{
			Name: "emotion",
			Keywords: []string{
				"love", "like", "happy", "sad", "angry", "worry", "afraid", "fear", "emotion",
			},
		},
		{
			Name: "location",
			Keywords: []string{
				"city", "country", "place", "room", "house", "home", "store", "shop",
				"market", "street", "road", "station",
			},
		},
		{
			Name: "nature",
			Keywords: []string{
				"weather", "rain", "snow", "wind", "sun", "cloud", "mountain", "river",
				"sea", "tree", "flower", "nature",
			},
		},
		{
			Name: "object",
			Keywords: []string{
				"phone", "computer", "book", "pen", "table", "chair", "clothes", "thing",
				"object", "bag", "cup", "glasses", "television", "movie",
			},
		},
	}
}
