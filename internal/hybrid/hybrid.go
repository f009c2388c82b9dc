package hybrid

import "github.com/alexiusacademia/gofastga/internal/component"

const (
	BatteryID   = "fastga.geometry.hybrid.battery"
	BatteryV2ID = "fastga.geometry.hybrid.battery_v2"
	H2StorageID = "fastga.geometry.hybrid.h2_storage"
	HexID       = "fastga.geometry.hybrid.hex"
	IntakesID   = "fastga.geometry.hybrid.intakes"
)

func init() {
	component.Register(BatteryID, func(opts component.Options) (component.Component, error) {
		name, err := opts.String("cell_type", "")
		if err != nil {
			return nil, err
		}
		b, err := NewBatteries(name)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
	component.Register(BatteryV2ID, func(component.Options) (component.Component, error) {
		return BatteriesV2{}, nil
	})
	component.Register(H2StorageID, func(component.Options) (component.Component, error) {
		return H2Tanks{}, nil
	})
	component.Register(HexID, func(component.Options) (component.Component, error) {
		return HeatExchanger{}, nil
	})
	component.Register(IntakesID, func(component.Options) (component.Component, error) {
		return Intakes{}, nil
	})
}
