package controllers

// Controllers bundles every controller for route registration.
type Controllers struct {
	Jams        *JamController
	Teams       *TeamController
	Users       *UserController
	Infractions *InfractionController
	Winners     *WinnerController
}
