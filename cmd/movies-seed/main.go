package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dannyrandall/moviecatalog/internal/dynamo"
	"github.com/dannyrandall/moviecatalog/internal/movies"
	"github.com/joho/godotenv"
)

// catalog is the fixture data loaded by the seeder. Ids are fixed so repeated
// runs overwrite rather than duplicate.
var catalog = []movies.Movie{
	{
		ID:          1,
		Title:       "The Color Purple",
		Year:        1985,
		Length:      154,
		Director:    "Steven Spielberg",
		Description: "Whoopi Goldberg brings Alice Walker's Pulitzer Prize-winning feminist novel to life as Celie, a Southern woman who suffered abuse over decades.",
		PosterURL:   "https://posters.example.com/the-color-purple.jpg",
		Category:    "Drama",
	},
	{
		ID:             2,
		Title:          "Clueless",
		Year:           1995,
		Length:         97,
		Director:       "Amy Heckerling",
		Description:    "A rich Beverly Hills teen plays matchmaker for her teachers and adopts a new student.",
		PosterURL:      "https://posters.example.com/clueless.jpg",
		Category:       "Comedy",
		Discount:       true,
		FemaleDirector: true,
	},
	{
		ID:          3,
		Title:       "Jaws",
		Year:        1975,
		Length:      124,
		Director:    "Steven Spielberg",
		Description: "Three men hunt a killer shark off Amity Island.",
		PosterURL:   "https://posters.example.com/jaws.jpg",
		Category:    "Thriller",
	},
	{
		ID:             4,
		Title:          "Selma",
		Year:           2014,
		Length:         128,
		Director:       "Ava DuVernay",
		Description:    "A chronicle of Martin Luther King Jr.'s campaign to secure equal voting rights via an epic march from Selma to Montgomery.",
		PosterURL:      "https://posters.example.com/selma.jpg",
		Category:       "Drama",
		FemaleDirector: true,
	},
	{
		ID:          5,
		Title:       "Alien",
		Year:        1979,
		Length:      117,
		Director:    "Ridley Scott",
		Description: "The crew of a commercial spacecraft encounters a deadly lifeform after investigating an unknown transmission.",
		PosterURL:   "https://posters.example.com/alien.jpg",
		Category:    "Science Fiction",
		Discount:    true,
	},
	{
		ID:             6,
		Title:          "Lady Bird",
		Year:           2017,
		Length:         94,
		Director:       "Greta Gerwig",
		Description:    "A Sacramento teenager navigates a turbulent senior year of high school and a loving but stormy bond with her mother.",
		PosterURL:      "https://posters.example.com/lady-bird.jpg",
		Category:       "Comedy",
		FemaleDirector: true,
	},
	{
		ID:             7,
		Title:          "The Hurt Locker",
		Year:           2008,
		Length:         131,
		Director:       "Kathryn Bigelow",
		Description:    "An Army bomb squad sergeant takes reckless risks defusing explosives in Baghdad.",
		PosterURL:      "https://posters.example.com/the-hurt-locker.jpg",
		Category:       "War",
		FemaleDirector: true,
	},
	{
		ID:          8,
		Title:       "Amélie",
		Year:        2001,
		Length:      122,
		Director:    "Jean-Pierre Jeunet",
		Description: "A shy Parisian waitress secretly arranges small miracles for the people around her.",
		PosterURL:   "https://posters.example.com/amelie.jpg",
		Category:    "Romance",
	},
	{
		ID:          9,
		Title:       "Moonlight",
		Year:        2016,
		Length:      111,
		Director:    "Barry Jenkins",
		Description: "Three chapters in the life of Chiron, growing up in Miami.",
		PosterURL:   "https://posters.example.com/moonlight.jpg",
		Category:    "Drama",
	},
	{
		ID:             10,
		Title:          "Wonder Woman",
		Year:           2017,
		Length:         141,
		Director:       "Patty Jenkins",
		Description:    "Diana leaves her sheltered island home to fight in the war to end all wars, discovering her full powers and true destiny.",
		PosterURL:      "https://posters.example.com/wonder-woman.jpg",
		Category:       "Action",
		Discount:       true,
		FemaleDirector: true,
	},
	{
		ID:          11,
		Title:       "Paddington 2",
		Year:        2017,
		Length:      103,
		Director:    "Paul King",
		Description: "A pop-up book, a prison sentence, and a lot of marmalade.",
		PosterURL:   "https://posters.example.com/paddington-2.jpg",
		Category:    "Family",
	},
	{
		ID:          12,
		Title:       "Parasite",
		Year:        2019,
		Length:      132,
		Director:    "Bong Joon-ho",
		Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		PosterURL:   "https://posters.example.com/parasite.jpg",
		Category:    "Thriller",
	},
}

func main() {
	_ = godotenv.Load(".env.local")

	moviesTable, ok := os.LookupEnv("MOVIES_NAME")
	if !ok {
		log.Fatalf("MOVIES_NAME is not set")
	}
	log.Printf("Seeding the %q table", moviesTable)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load aws config: %s", err)
	}

	store := &dynamo.Store{
		Client: dynamodb.NewFromConfig(cfg),
		Table:  moviesTable,
	}

	for _, m := range catalog {
		if err := store.Put(ctx, m); err != nil {
			log.Fatalf("unable to seed movie %d (%s): %s", m.ID, m.Title, err)
		}
		log.Printf("Seeded movie %d (%s)", m.ID, m.Title)
	}

	log.Printf("Seeded %d movies", len(catalog))
}
