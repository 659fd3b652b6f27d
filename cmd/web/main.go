// @title           PhysiqueCheck API
// @version         1.0
// @description     Physique analysis and workout/meal recommendation service.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"physique_backend/internal/app"

	_ "physique_backend/docs"
)

func main() {
	app.Run()
}
