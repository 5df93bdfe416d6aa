package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the map sequence",
	Long: `Shows the maps in play order. The sequence ends at the first missing
number and wraps back to map 1 after the last one.

Map files are named map1.txt, map2.yaml, ... Text maps use one character
per tile: A-Z solid, o mushroom, ! spider, 1 centipede, 2 laser,
* goal (reaching it moves on to the next map).`,
	Args: cobra.NoArgs,
	Run:  runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	loader, err := openMaps()
	if err != nil {
		fatalf("%v", err)
	}

	infos, err := loader.List()
	if len(infos) == 0 && err == nil {
		fmt.Println("No maps available.")
		return
	}

	fmt.Printf("Maps (%s):\n", mapsSource())
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-7s  %-5s  %s\n", "#", "Name", "Size", "Tiles", "Sprites")
	fmt.Printf("  %-3s  %-16s  %-7s  %-5s  %s\n", "-", "----", "----", "-----", "-------")
	for _, m := range infos {
		fmt.Printf("  %-3d  %-16s  %-7s  %-5d  %d\n", m.Index, m.Name, fmt.Sprintf("%dx%d", m.W, m.H), m.Tiles, m.Placements)
	}

	if err != nil {
		fmt.Println()
		fatalf("%v", err)
	}
}
