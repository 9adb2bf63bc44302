package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/annonceo/listings-api/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cmd.Execute()
}
