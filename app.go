package spincube

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module installs resources and systems into an App. Returning an error
// aborts Build.
type Module interface {
	Install(app *App, cmd *Commands) error
}

type App struct {
	stateful           bool
	stateTransitioning bool
	initialState       State
	finalState         State
	nextState          State
	state              State
	stages             []Stage
	systems            map[string]map[State]map[statePhase][]systemFn
	systemsStateless   map[string][]systemFn
	resources          map[reflect.Type]any
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// State reports the current app state. Stateless apps always report 0.
func (app *App) State() State {
	return app.state
}

// Run drives the frame loop. A stateful app returns once it reaches its final
// state and has run that state's exit systems; a stateless app never returns.
func (app *App) Run() {
	logger := app.Logger()

	if app.stateful {
		logger.Debugf("running in stateful mode")

		app.state = app.initialState
		app.callSystems(app.state, enter)
	} else {
		logger.Debugf("running in stateless mode")
	}

	for {
		app.callSystems(app.state, execute)

		if app.stateful {
			if app.stateTransitioning {
				app.stateTransitioning = false
				app.executeChangeState(app.nextState)
			}

			if app.state == app.finalState {
				app.callSystems(app.state, exit)
				break
			}
		}
	}
}

func (app *App) callSystems(state State, phase statePhase) {
	for _, stage := range app.stages {
		// Stateless systems only take part in the execute phase.
		if execute == phase {
			for _, system := range app.systemsStateless[stage.Name] {
				app.callSystem(system)
			}
		}

		if app.stateful {
			if systemsInStage, ok := app.systems[stage.Name]; ok {
				if systemsInState, ok := systemsInStage[state]; ok {
					for _, system := range systemsInState[phase] {
						app.callSystem(system)
					}
				}
			}
		}
	}
}

func (app *App) changeState(newState State) {
	app.nextState = newState
	app.stateTransitioning = true
}

func (app *App) executeChangeState(newState State) {
	app.callSystems(app.state, exit)
	app.state = newState
	app.callSystems(app.state, enter)
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// resource returns the registered *T, if any.
func resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := r.(*T)
	return typed, ok
}

// resolveInterface finds the first resource implementing iface.
func (app *App) resolveInterface(iface reflect.Type) (reflect.Value, bool) {
	for _, r := range app.resources {
		v := reflect.ValueOf(r)
		if v.Type().Implements(iface) {
			return v, true
		}
	}
	return reflect.Value{}, false
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
)

// callSystem resolves every parameter of system from the resource map and
// calls it. Parameters are either *Commands, a pointer to a registered
// resource, or an interface implemented by one.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType.Kind() == reflect.Interface {
			if v, ok := app.resolveInterface(argType); ok {
				args[i] = v
				continue
			}
			if argType == typeOfLogger {
				args[i] = reflect.ValueOf(app.Logger())
				continue
			}
		} else if argType.Kind() == reflect.Pointer {
			underlyingType := argType.Elem()
			if underlyingType == typeOfCommands {
				args[i] = reflect.ValueOf(&Commands{app: app})
				continue
			}
			if r, ok := app.resources[underlyingType]; ok {
				args[i] = reflect.ValueOf(r)
				continue
			}
		}

		msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
			runtime.FuncForPC(systemValue.Pointer()).Name(),
			fmt.Sprint(systemType),
			fmt.Sprint(argType),
		)
		app.Logger().Errorf("%s", msg)
		panic(msg)
	}
	systemValue.Call(args)
}
