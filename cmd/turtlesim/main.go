package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1"
	env "github.com/robotalks/turtle.go/pkg/l1/env/controller"
	"github.com/robotalks/turtle.go/pkg/sim/bots/turtlesim"
	"github.com/robotalks/turtle.go/pkg/sim/visualization/see"
)

const (
	imageSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-150 -150 300 300">
		<g>
			<ellipse cx="0" cy="0" rx="90" ry="70" fill="green" />
			<circle cx="110" cy="0" r="30" fill="green" />
			<circle cx="-55" cy="-70" r="20" fill="darkgreen" />
			<circle cx="-55" cy="70" r="20" fill="darkgreen" />
			<circle cx="55" cy="-70" r="20" fill="darkgreen" />
			<circle cx="55" cy="70" r="20" fill="darkgreen" />
		</g>
	</svg>`
)

func init() {
	env.SetControllerType(turtlesim.ControllerType, l1.ControllerMeta{Description: "Simulation: turtles"})
	env.SetupFlags()
	see.SetupFlags()
	turtlesim.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	env := env.NewConfig().MustNewEnv()
	conf := turtlesim.NewConfig()
	sim := conf.NewController(env)
	loop := fx.NewLoop().WithInterval(conf.PoseInterval).Add(env, sim)

	if visConf := see.NewConfig(); visConf.Enabled {
		vis := visConf.NewAdapter()
		vis.Mapper = see.MapObjectFunc(func(obj see.VisibleObject) []see.Object {
			return []see.Object{
				see.ObjectFrom("image", obj).With("src", "data:image/svg+xml;utf8,"+imageSVG),
			}
		})
		vis.Subscribe(sim)
		loop.Add(vis)
	}

	glog.Infof("%s serving on %v", env.Config.Info.Ref.Name(), env.RegistryURLs)
	loop.RunOrFail()
}
