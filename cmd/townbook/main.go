// Command townbook is a small demo CLI over the SDK: it lists
// businesses, prints the community feed and searches the directory
// against a live backend, or against the bundled mock server when the
// backend is down (the SDK's fallback makes the two indistinguishable
// here, which is the point).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/townbook/client-go/client"
	"github.com/townbook/client-go/config"
	"github.com/townbook/client-go/session"
	"github.com/townbook/client-go/types"
)

func main() {
	var (
		city    = flag.String("city", "", "filter businesses by city")
		search  = flag.String("search", "", "search query")
		feed    = flag.Bool("feed", false, "print the community feed")
		profile = flag.String("profile", "", "print one user profile")
	)
	flag.Parse()

	cfg := config.Load()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	store, err := session.OpenFileStore(cfg.SessionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}

	api := client.New(cfg.APIBaseURL, client.WithSession(store), client.WithLogger(log))
	ctx := context.Background()

	switch {
	case *feed:
		printFeed(api.GetPosts(ctx))
	case *profile != "":
		current := ""
		if user, ok := store.CurrentUser(); ok {
			current = user.ID
		}
		printProfile(api.GetUserProfile(ctx, *profile, current))
	case *search != "":
		printBusinesses(api.SearchBusinesses(ctx, *search, *city))
	default:
		printBusinesses(api.GetBusinesses(ctx, types.BusinessParams{City: *city}))
	}
}

func printBusinesses(businesses []types.Business) {
	for _, b := range businesses {
		fmt.Printf("%-28s  %-12s  %-10s  %.1f★\n", b.BusinessName, b.City, b.Status, b.Rating)
	}
	if len(businesses) == 0 {
		fmt.Println("no businesses found")
	}
}

func printFeed(posts []types.Post) {
	for _, p := range posts {
		fmt.Printf("[%s] %s: %s (%d likes, %d comments)\n",
			p.Type, p.User.Name, p.Content, len(p.Likes), len(p.Comments))
		if p.Poll != nil {
			for _, opt := range p.Poll.Options {
				fmt.Printf("    - %s (%d votes)\n", opt.Text, len(opt.Votes))
			}
		}
	}
}

func printProfile(profile *types.UserProfile) {
	if profile == nil {
		fmt.Println("profile not found")
		return
	}
	fmt.Printf("%s (%s)\n", profile.Name, profile.ID)
	fmt.Printf("followers: %d  following: %d  posts: %d\n",
		profile.FollowersCount, profile.FollowingCount, profile.PostsCount)
}
