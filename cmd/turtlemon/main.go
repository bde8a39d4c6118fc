package main

import (
	"flag"
	"os"
	"reflect"
	"strings"

	"github.com/golang/glog"

	fx "github.com/robotalks/turtle.go/pkg/framework"
	"github.com/robotalks/turtle.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/turtle.go/pkg/l1/msgs"
)

var (
	mqttURL   = "mqtt://localhost:1883/turtle/"
	showPoses bool
)

func init() {
	if val := os.Getenv("TURTLE_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.BoolVar(&showPoses, "poses", showPoses, "Also print pose events, they are frequent.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Exit(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		glog.Exit(token.Error())
	}
	defer q.Close()

	sub := q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			if info, ok := mqtt.ParseMeta(topic, payload); ok {
				glog.Infof("%s: online %s", topic, info.Ref.Name())
			} else {
				glog.Infof("%s: offline", topic)
			}
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			glog.Warningf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		if _, ok := msg.(*msgs.PoseEvent); ok && !showPoses {
			return
		}
		glog.Infof("%s: [%s] #%d %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			typed.Sequence,
			msg.(msgs.SerializableMessage).Serializable().String())
	}))
	defer sub.Close()

	<-fx.NewRunner().HandleSignals().Context.Done()
}
