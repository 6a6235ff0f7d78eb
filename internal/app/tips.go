package app

import (
	"context"
	"fmt"
	"strconv"
)

// CareTip is one piece of advice within a category. The detail screen
// receives its title, description, and category as route parameters.
type CareTip struct {
	Title       string
	Description string
}

// CareTipCategory groups tips under a named topic.
type CareTipCategory struct {
	Title string
	Tips  []CareTip
}

var careTipCategories = []CareTipCategory{
	{
		Title: "General Plant Care",
		Tips: []CareTip{
			{"Check regularly", "Check your plants at regular intervals and clean their leaves so they can breathe and absorb light."},
			{"Don't overwater", "Avoid overwatering; water when the top layer of the soil has dried out."},
			{"Rotate for even light", "Turn your plants from time to time so that every side receives an equal amount of light."},
		},
	},
	{
		Title: "Watering",
		Tips: []CareTip{
			{"Know your plant", "Every plant has different water needs. Set the watering frequency according to the species."},
			{"Water early or late", "Watering in the morning or evening reduces how much water evaporates before it reaches the roots."},
			{"Room-temperature water", "Make sure the water you use is at room temperature; cold water shocks the roots."},
			{"Empty the saucer", "Drain excess water from the saucer under the pot to prevent root rot."},
		},
	},
	{
		Title: "Light",
		Tips: []CareTip{
			{"Filtered light", "Keep plants out of direct sunlight; filtered light is ideal for most houseplants."},
			{"Signs of too little light", "With insufficient light a plant grows weak and pale. Move it somewhere brighter."},
			{"Winter placement", "In the winter months you can place your plants closer to a window."},
		},
	},
	{
		Title: "Soil and Pots",
		Tips: []CareTip{
			{"Match the soil", "Choose soil suited to the species. Cacti and succulents prefer a fast-draining mix."},
			{"Repot in spring", "Repot in spring and disturb the roots as little as possible."},
			{"Drainage holes", "Make sure the pot has drainage holes at the bottom."},
		},
	},
	{
		Title: "Fertilizing",
		Tips: []CareTip{
			{"Feed in the growing season", "Use a suitable liquid fertilizer in spring and summer."},
			{"Don't overfeed", "Avoid overfertilizing; too much can burn the roots."},
			{"Winter rest", "Plants usually rest in winter, so pause fertilizing until spring."},
		},
	},
	{
		Title: "Pests and Diseases",
		Tips: []CareTip{
			{"Isolate early", "If you notice spots, insects, or sticky leaves, isolate the plant from the others."},
			{"Gentle treatments", "Treat pests with soapy water or neem oil before reaching for anything stronger."},
			{"Get help", "If a disease keeps spreading, get professional advice."},
		},
	},
	{
		Title: "Popular Species",
		Tips: []CareTip{
			{"Areca palm", "Likes airy rooms and filtered light."},
			{"Peace lily", "Partial shade and moist soil are ideal."},
			{"Cactus & succulent", "Little water, lots of light."},
			{"English ivy", "Likes partial shade, regular watering, and humid air."},
		},
	},
}

// exploreScreen lists the care-tip categories; choosing a tip opens the
// detail screen with the tip's title, description, and category.
func (a *App) exploreScreen(ctx context.Context) Route {
	fmt.Fprintln(a.out, "\n== Explore ==")
	fmt.Fprintln(a.out, "Plant care, organized by topic.")
	for i, cat := range careTipCategories {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, cat.Title)
	}

	for {
		choice, err := getSimpleText(a.reader, "Enter a category number, or 'back'", a.out)
		if err != nil {
			return to(routeExit)
		}
		if choice == "" || choice == "back" {
			return to(routeTabs)
		}
		n, aerr := strconv.Atoi(choice)
		if aerr != nil || n < 1 || n > len(careTipCategories) {
			fmt.Fprintln(a.out, "Unknown command:", choice)
			continue
		}

		cat := careTipCategories[n-1]
		fmt.Fprintf(a.out, "\n%s\n", cat.Title)
		for j, tip := range cat.Tips {
			fmt.Fprintf(a.out, "%2d. %s\n", j+1, tip.Title)
		}

		tchoice, err := getSimpleText(a.reader, "Enter a tip number, or 'back'", a.out)
		if err != nil {
			return to(routeExit)
		}
		m, terr := strconv.Atoi(tchoice)
		if terr != nil || m < 1 || m > len(cat.Tips) {
			continue
		}

		tip := cat.Tips[m-1]
		return toWith(routeTipDetail, map[string]string{
			"title":    tip.Title,
			"desc":     tip.Description,
			"category": cat.Title,
		})
	}
}

func (a *App) tipDetailScreen(ctx context.Context, params map[string]string) Route {
	fmt.Fprintf(a.out, "\n== %s ==\n", params["title"])
	if c := params["category"]; c != "" {
		fmt.Fprintf(a.out, "Category: %s\n", c)
	}
	fmt.Fprintln(a.out, params["desc"])

	if _, err := getSimpleText(a.reader, "Press Enter to go back", a.out); err != nil {
		return to(routeExit)
	}
	return to(routeExplore)
}
