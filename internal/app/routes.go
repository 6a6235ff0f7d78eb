package app

// Route names. Each screen returns the next route; the navigation loop in
// App.Run dispatches until routeExit.
const (
	routeLogin       = "login"
	routeRegister    = "register"
	routeTabs        = "tabs"
	routeAddPlant    = "add-plant"
	routeEditPlant   = "edit-plant"
	routePlantDetail = "plant-detail"
	routeExplore     = "explore"
	routeProfile     = "profile"
	routeTipDetail   = "tip-detail"
	routeIntro1      = "onboarding/intro1"
	routeIntro2      = "onboarding/intro2"
	routeIntro3      = "onboarding/intro3"
	routeExit        = "exit"
)

// Route is a navigation target: a name plus optional string parameters
// (e.g. the record id for plant-detail).
type Route struct {
	Name   string
	Params map[string]string
}

func to(name string) Route {
	return Route{Name: name}
}

func toWith(name string, params map[string]string) Route {
	return Route{Name: name, Params: params}
}
