package main

import (
	"fmt"
	"os"

	"github.com/voxeltools/litematic/utils"
)

func usage() {
	fmt.Println("Usage: litematool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  info input.litematic                     (print metadata and region summary)")
	fmt.Println("  lit2glb input.litematic output.glb       (convert .litematic -> .glb using greedy mesh)")
	fmt.Println("  reencode input.litematic output.litematic (decode and re-encode, normalizing volumes)")
	fmt.Println("  gennoise <percentage> <amount> <output_dir> (generate N random .litematic files)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunInfo(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "lit2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunLitematic2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "reencode":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunReencode(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		var perc float64
		var amt int
		if _, err := fmt.Sscan(os.Args[2], &perc); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[3], &amt); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenerateNoise(perc, amt, os.Args[4]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
