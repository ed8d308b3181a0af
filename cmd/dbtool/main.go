package main

import "colis-service/cmd/dbtool/command"

func main() {
	command.Execute()
}
