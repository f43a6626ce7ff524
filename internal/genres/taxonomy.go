// file: internal/genres/taxonomy.go
// version: 1.0.0
// guid: 5b6c7d8e-9f0a-1b2c-3d4e-5f6a7b8c9d0e

package genres

// Approved is the fixed genre taxonomy. Classifier output is drawn only
// from this list, capped at three entries per book.
var Approved = []string{
	// Fiction
	"Fiction",
	"Literary Fiction",
	"Historical Fiction",
	"Contemporary Fiction",
	"Women's Fiction",
	"Christian Fiction",
	"Science Fiction",
	"Fantasy",
	"Urban Fantasy",
	"Epic Fantasy",
	"Dark Fantasy",
	"Paranormal",
	"Dystopian",
	"Space Opera",
	"Time Travel",
	"Alternate History",
	"Mystery",
	"Cozy Mystery",
	"Thriller",
	"Psychological Thriller",
	"Legal Thriller",
	"Crime",
	"True Crime",
	"Suspense",
	"Horror",
	"Romance",
	"Historical Romance",
	"Paranormal Romance",
	"Romantic Comedy",
	"Romantic Suspense",
	"Western",
	"Adventure",
	"Action & Adventure",
	"War Fiction",
	"Humor",
	"Satire",
	"Short Stories",
	"Anthology",
	"Classics",
	"Mythology",
	"Fairy Tales",
	"Superhero",
	"LitRPG",
	"Cyberpunk",
	"Steampunk",
	"Post-Apocalyptic",
	// Non-fiction
	"Non-Fiction",
	"Biography",
	"Autobiography",
	"Memoir",
	"History",
	"Military History",
	"Science",
	"Nature",
	"Technology",
	"Mathematics",
	"Philosophy",
	"Psychology",
	"Self-Help",
	"Personal Development",
	"Business",
	"Economics",
	"Finance",
	"Leadership",
	"Management",
	"Entrepreneurship",
	"Politics",
	"Current Events",
	"Religion",
	"Spirituality",
	"Health & Wellness",
	"Fitness",
	"Cooking",
	"Travel",
	"Sports",
	"Music",
	"Art",
	"Education",
	"Language",
	"Reference",
	"Essays",
	"Journalism",
	"Parenting",
	"Relationships",
	// Age bands
	"Children's 0-2",
	"Children's 3-5",
	"Children's 6-8",
	"Children's 9-12",
	"Teen 13-17",
	// Broad / format
	"Adult",
	"Full Cast",
	"Dramatization",
	"Poetry",
	"Drama",
}

// aliases maps lowercased free-text genre tokens to approved genres.
var aliases = map[string]string{
	"sci-fi":                  "Science Fiction",
	"scifi":                   "Science Fiction",
	"sf":                      "Science Fiction",
	"science-fiction":         "Science Fiction",
	"sci fi":                  "Science Fiction",
	"speculative fiction":     "Science Fiction",
	"sci-fi & fantasy":        "Science Fiction",
	"high fantasy":            "Epic Fantasy",
	"sword and sorcery":       "Epic Fantasy",
	"sword & sorcery":         "Epic Fantasy",
	"grimdark":                "Dark Fantasy",
	"magical realism":         "Fantasy",
	"supernatural":            "Paranormal",
	"ghosts":                  "Paranormal",
	"vampires":                "Paranormal",
	"detective":               "Mystery",
	"whodunit":                "Mystery",
	"detective fiction":       "Mystery",
	"murder mystery":          "Mystery",
	"police procedural":       "Crime",
	"noir":                    "Crime",
	"crime fiction":           "Crime",
	"crime thriller":          "Thriller",
	"spy":                     "Thriller",
	"espionage":               "Thriller",
	"techno-thriller":         "Thriller",
	"psych thriller":          "Psychological Thriller",
	"scary":                   "Horror",
	"ghost stories":           "Horror",
	"love story":              "Romance",
	"love stories":            "Romance",
	"romcom":                  "Romantic Comedy",
	"chick lit":               "Women's Fiction",
	"womens fiction":          "Women's Fiction",
	"historical":              "Historical Fiction",
	"hist fic":                "Historical Fiction",
	"regency":                 "Historical Romance",
	"regency romance":         "Historical Romance",
	"cowboys":                 "Western",
	"westerns":                "Western",
	"funny":                   "Humor",
	"comedy":                  "Humor",
	"humour":                  "Humor",
	"classic":                 "Classics",
	"classic literature":      "Classics",
	"literature":              "Literary Fiction",
	"literary":                "Literary Fiction",
	"general fiction":         "Fiction",
	"novel":                   "Fiction",
	"novels":                  "Fiction",
	"myths":                   "Mythology",
	"myths & legends":         "Mythology",
	"folklore":                "Fairy Tales",
	"folk tales":              "Fairy Tales",
	"apocalyptic":             "Post-Apocalyptic",
	"post apocalyptic":        "Post-Apocalyptic",
	"dystopia":                "Dystopian",
	"gamelit":                 "LitRPG",
	"litrpg":                  "LitRPG",
	"nonfiction":              "Non-Fiction",
	"non fiction":             "Non-Fiction",
	"general nonfiction":      "Non-Fiction",
	"bio":                     "Biography",
	"biographies":             "Biography",
	"biography & memoir":      "Memoir",
	"biographies & memoirs":   "Memoir",
	"memoirs":                 "Memoir",
	"autobiographies":         "Autobiography",
	"world history":           "History",
	"american history":        "History",
	"military":                "Military History",
	"war":                     "Military History",
	"popular science":         "Science",
	"pop science":             "Science",
	"physics":                 "Science",
	"biology":                 "Science",
	"astronomy":               "Science",
	"environment":             "Nature",
	"animals":                 "Nature",
	"computers":               "Technology",
	"computing":               "Technology",
	"programming":             "Technology",
	"math":                    "Mathematics",
	"self improvement":        "Self-Help",
	"self-improvement":        "Self-Help",
	"selfhelp":                "Self-Help",
	"motivation":              "Personal Development",
	"motivational":            "Personal Development",
	"productivity":            "Personal Development",
	"money":                   "Finance",
	"investing":               "Finance",
	"personal finance":        "Finance",
	"startups":                "Entrepreneurship",
	"political science":       "Politics",
	"government":              "Politics",
	"news":                    "Current Events",
	"christianity":            "Religion",
	"christian":               "Religion",
	"buddhism":                "Religion",
	"islam":                   "Religion",
	"faith":                   "Spirituality",
	"mindfulness":             "Spirituality",
	"meditation":              "Spirituality",
	"health":                  "Health & Wellness",
	"wellness":                "Health & Wellness",
	"diet":                    "Health & Wellness",
	"nutrition":               "Health & Wellness",
	"exercise":                "Fitness",
	"food":                    "Cooking",
	"food & drink":            "Cooking",
	"recipes":                 "Cooking",
	"sport":                   "Sports",
	"family":                  "Parenting",
	"dating":                  "Relationships",
	"marriage":                "Relationships",
	"essay":                   "Essays",
	"poems":                   "Poetry",
	"plays":                   "Drama",
	"theatre":                 "Drama",
	"full-cast":               "Full Cast",
	"full cast recording":     "Full Cast",
	"radio drama":             "Dramatization",
	"audio drama":             "Dramatization",
	"graphic audio":           "Dramatization",
	// Age-band synonyms resolve through legacy defaults in the classifier.
	"ya":            "Teen 13-17",
	"young adult":   "Teen 13-17",
	"teen":          "Teen 13-17",
	"teens":         "Teen 13-17",
	"juvenile":      "Children's 6-8",
	"middle grade":  "Children's 9-12",
	"middle-grade":  "Children's 9-12",
	"children":      "Children's 6-8",
	"children's":    "Children's 6-8",
	"childrens":     "Children's 6-8",
	"kids":          "Children's 6-8",
	"picture book":  "Children's 3-5",
	"picture books": "Children's 3-5",
	"board book":    "Children's 0-2",
	"board books":   "Children's 0-2",
	"early reader":  "Children's 6-8",
	"early readers": "Children's 6-8",
	"chapter book":  "Children's 6-8",
	"chapter books": "Children's 6-8",
}

// ageBands in ascending order of reader age.
var ageBands = []string{
	"Children's 0-2",
	"Children's 3-5",
	"Children's 6-8",
	"Children's 9-12",
	"Teen 13-17",
}

// broadGenres are sorted last and dropped when a specific genre is present.
var broadGenres = map[string]bool{
	"Fiction":     true,
	"Non-Fiction": true,
	"Adult":       true,
}

// seriesAgeBands maps lowercased series/author/title keywords to a specific
// age band. Consulted when classifying children's books so generic tags
// ("kids", "ya") are replaced with the right band.
var seriesAgeBands = map[string]string{
	// Children's 0-2
	"goodnight moon":          "Children's 0-2",
	"very hungry caterpillar": "Children's 0-2",
	"sandra boynton":          "Children's 0-2",
	// Children's 3-5
	"dr. seuss":        "Children's 3-5",
	"dr seuss":         "Children's 3-5",
	"llama llama":      "Children's 3-5",
	"curious george":   "Children's 3-5",
	"berenstain bears": "Children's 3-5",
	"pete the cat":     "Children's 3-5",
	"mo willems":       "Children's 3-5",
	"eric carle":       "Children's 3-5",
	// Children's 6-8
	"magic tree house":      "Children's 6-8",
	"junie b. jones":        "Children's 6-8",
	"junie b jones":         "Children's 6-8",
	"captain underpants":    "Children's 6-8",
	"flat stanley":          "Children's 6-8",
	"boxcar children":       "Children's 6-8",
	"mercy watson":          "Children's 6-8",
	"my father's dragon":    "Children's 6-8",
	"ivy and bean":          "Children's 6-8",
	"beverly cleary":        "Children's 6-8",
	"roald dahl":            "Children's 6-8",
	// Children's 9-12
	"percy jackson":           "Children's 9-12",
	"diary of a wimpy kid":    "Children's 9-12",
	"wings of fire":           "Children's 9-12",
	"warriors":                "Children's 9-12",
	"redwall":                 "Children's 9-12",
	"artemis fowl":            "Children's 9-12",
	"series of unfortunate":   "Children's 9-12",
	"chronicles of narnia":    "Children's 9-12",
	"rick riordan":            "Children's 9-12",
	"keeper of the lost":      "Children's 9-12",
	"land of stories":         "Children's 9-12",
	// Teen 13-17
	"hunger games":       "Teen 13-17",
	"divergent":          "Teen 13-17",
	"maze runner":        "Teen 13-17",
	"twilight":           "Teen 13-17",
	"mortal instruments": "Teen 13-17",
	"six of crows":       "Teen 13-17",
	"throne of glass":    "Teen 13-17",
	"red queen":          "Teen 13-17",
	"john green":         "Teen 13-17",
}
