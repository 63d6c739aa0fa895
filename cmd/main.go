package main

import (
	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
