package main

import "covidtrends-backend/cmd/covidtrends-cli/cmd"

func main() {
	cmd.Execute()
}
