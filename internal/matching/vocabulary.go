package matching

// Vocabulary is a controlled set of canonical tags plus an alias table for
// common abbreviations and variants. Aliases are checked before the fuzzy
// search as an exact fast path.
type Vocabulary struct {
	Canonical []string
	Aliases   map[string]string
}

// DefaultSkillVocabulary returns the built-in skill vocabulary.
func DefaultSkillVocabulary() Vocabulary {
	return Vocabulary{
		Canonical: []string{
			"javascript", "typescript", "python", "java", "go", "rust",
			"c++", "c#", "ruby", "php", "swift", "kotlin", "scala",
			"react", "angular", "vue", "node.js", "django", "flask",
			"spring", "rails", "sql", "postgresql", "mongodb", "redis",
			"docker", "kubernetes", "terraform", "aws", "gcp", "azure",
			"git", "linux", "html", "css", "graphql", "rest api design",
			"data analysis", "machine learning", "deep learning",
			"data engineering", "devops", "security", "testing",
			"ui design", "ux research", "product management",
			"project management", "agile", "public speaking",
			"technical writing", "leadership", "mentoring",
		},
		Aliases: map[string]string{
			"js":          "javascript",
			"ts":          "typescript",
			"py":          "python",
			"golang":      "go",
			"cpp":         "c++",
			"c sharp":     "c#",
			"csharp":      "c#",
			"react.js":    "react",
			"reactjs":     "react",
			"vuejs":       "vue",
			"vue.js":      "vue",
			"node":        "node.js",
			"nodejs":      "node.js",
			"postgres":    "postgresql",
			"mongo":       "mongodb",
			"k8s":         "kubernetes",
			"ml":          "machine learning",
			"dl":          "deep learning",
			"html5":       "html",
			"css3":        "css",
			"ui":          "ui design",
			"ux":          "ux research",
			"pm":          "product management",
			"scrum":       "agile",
			"infosec":     "security",
			"qa":          "testing",
		},
	}
}

// DefaultInterestVocabulary returns the built-in interest vocabulary.
func DefaultInterestVocabulary() Vocabulary {
	return Vocabulary{
		Canonical: []string{
			"hiking", "reading", "gaming", "music", "cooking", "travel",
			"photography", "chess", "running", "cycling", "yoga",
			"meditation", "movies", "anime", "football", "basketball",
			"tennis", "swimming", "climbing", "volunteering", "painting",
			"writing", "dancing", "podcasts", "startups", "investing",
			"languages", "board games", "gardening", "astronomy",
		},
		Aliases: map[string]string{
			"films":            "movies",
			"cinema":           "movies",
			"jogging":          "running",
			"trekking":         "hiking",
			"soccer":           "football",
			"video games":      "gaming",
			"videogames":       "gaming",
			"books":            "reading",
			"entrepreneurship": "startups",
			"bouldering":       "climbing",
			"stocks":           "investing",
			"boardgames":       "board games",
		},
	}
}
