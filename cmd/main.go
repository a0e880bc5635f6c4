package main

import (
    "platebook/config"
    "platebook/routes"
    "platebook/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()
    r.Run(":8080")
}
