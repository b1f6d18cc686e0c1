package main

import "github.com/driverportal/portal-api/cmd/portal/cmd"

func main() {
	cmd.Execute()
}
