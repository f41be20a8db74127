package panel

import (
	"fmt"

	"github.com/san-kum/fisicalc/internal/form"
	"github.com/san-kum/fisicalc/internal/physics"
)

// Registry holds the four calculator panels in display order.
type Registry struct {
	panels map[string]*Panel
	order  []string
}

func NewRegistry() *Registry {
	r := &Registry{panels: make(map[string]*Panel)}

	r.add(&Panel{
		Name:        "planeta",
		Title:       "Gravedad del planeta",
		Description: "lanzamiento de proyectil",
		Schema: form.Schema{Fields: []form.Field{
			{Name: "v0", Label: "Velocidad inicial", Unit: "m/s", Default: 10},
			{Name: "angle", Label: "Ángulo de lanzamiento", Unit: "°", Default: 45},
			{Name: "distance", Label: "Distancia recorrida", Unit: "m", Default: 10},
		}},
		ResultLabel: "Aceleración gravitacional",
		ResultUnit:  "m/s²",
		Compute: func(v form.Values) (float64, error) {
			in := physics.PlanetInput{
				InitialVelocity: v["v0"],
				Angle:           v["angle"],
				Distance:        v["distance"],
			}
			return in.Solve()
		},
	})

	r.add(&Panel{
		Name:        "astronauta",
		Title:       "Tiro libre del astronauta",
		Description: "alcance en baja gravedad",
		Schema: form.Schema{Fields: []form.Field{
			{Name: "height", Label: "Altura del astronauta", Unit: "m", Default: 2.0},
			{Name: "gravity", Label: "Gravedad", Unit: "m/s²", Default: 1.62},
			{Name: "angle", Label: "Ángulo de tiro", Unit: "°", Default: 45},
			{Name: "v0", Label: "Velocidad inicial", Unit: "m/s", Default: 5},
			{Name: "hoop", Label: "Altura del aro", Unit: "m", Default: 3.05},
		}},
		ResultLabel: "Distancia horizontal",
		ResultUnit:  "m",
		Compute: func(v form.Values) (float64, error) {
			in := physics.AstronautInput{
				Height:          v["height"],
				Gravity:         v["gravity"],
				Angle:           v["angle"],
				InitialVelocity: v["v0"],
				HoopHeight:      v["hoop"],
			}
			return in.Solve()
		},
	})

	r.add(&Panel{
		Name:        "camion",
		Title:       "Camión en la pendiente",
		Description: "ángulo de deslizamiento",
		Schema: form.Schema{Fields: []form.Field{
			{Name: "mass", Label: "Masa del camión", Unit: "kg", Default: 3000},
			{Name: "friction", Label: "Coeficiente de fricción", Default: 0.7},
		}},
		ResultLabel: "Ángulo de deslizamiento",
		ResultUnit:  "°",
		Compute: func(v form.Values) (float64, error) {
			in := physics.TruckInput{
				Mass:     v["mass"],
				Friction: v["friction"],
			}
			return in.Solve()
		},
	})

	r.add(&Panel{
		Name:        "mensajero",
		Title:       "Bolso del mensajero",
		Description: "equilibrio de fuerzas",
		Schema: form.Schema{Fields: []form.Field{
			{Name: "angle", Label: "Ángulo de la pendiente", Unit: "°", Default: 25},
			{Name: "height", Label: "Altura", Unit: "m", Default: 1.2},
			{Name: "friction", Label: "Coeficiente de fricción", Default: 0.3},
			{Name: "accel", Label: "Aceleración", Unit: "m/s²", Default: 1},
			{Name: "mass", Label: "Masa del bolso", Unit: "kg", Default: 4},
		}},
		ResultLabel: "Fuerza",
		ResultUnit:  "N",
		Compute: func(v form.Values) (float64, error) {
			in := physics.MessengerInput{
				Angle:        v["angle"],
				Height:       v["height"],
				Friction:     v["friction"],
				Acceleration: v["accel"],
				Mass:         v["mass"],
			}
			return in.Solve()
		},
	})

	return r
}

func (r *Registry) add(p *Panel) {
	r.panels[p.Name] = p
	r.order = append(r.order, p.Name)
}

// Get returns the named panel.
func (r *Registry) Get(name string) (*Panel, error) {
	p, ok := r.panels[name]
	if !ok {
		return nil, fmt.Errorf("unknown panel: %s", name)
	}
	return p, nil
}

// Names returns the panel names in display order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Panels returns the panels in display order.
func (r *Registry) Panels() []*Panel {
	panels := make([]*Panel, len(r.order))
	for i, name := range r.order {
		panels[i] = r.panels[name]
	}
	return panels
}
