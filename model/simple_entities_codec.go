// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders b as a (bus <uuid> <name>) list.
func (b *Bus) Serialize() *sexpr.Node {
	return sexpr.NewList("bus", encodeUuid(b.uuid), sexpr.NewString(b.name))
}

// DeserializeBus parses the inverse of (*Bus).Serialize.
func DeserializeBus(n *sexpr.Node) (*Bus, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	return NewBusFromUuid(u, name), nil
}

// Serialize renders n as a (net_signal <uuid> <name> <bus-or-none>) list.
func (n *NetSignal) Serialize() *sexpr.Node {
	busTok := "none"
	if n.bus != nil {
		busTok = n.bus.String()
	}
	return sexpr.NewList("net_signal", encodeUuid(n.uuid), sexpr.NewString(n.name), sexpr.NewToken(busTok))
}

// DeserializeNetSignal parses the inverse of (*NetSignal).Serialize.
func DeserializeNetSignal(node *sexpr.Node) (*NetSignal, error) {
	u, err := decodeUuidAt(node, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(node, 1)
	if err != nil {
		return nil, err
	}
	busTok, err := decodeToken(node, 2)
	if err != nil {
		return nil, err
	}
	var bus *Uuid
	if busTok != "none" {
		b, err := ParseUuid(busTok)
		if err != nil {
			return nil, err
		}
		bus = &b
	}
	return &NetSignal{uuid: u, name: name, bus: bus}, nil
}

// Serialize renders v as a (assembly_variant <uuid> <name> <description>) list.
func (v *AssemblyVariant) Serialize() *sexpr.Node {
	return sexpr.NewList("assembly_variant", encodeUuid(v.uuid), sexpr.NewString(v.name), sexpr.NewString(v.description))
}

// DeserializeAssemblyVariant parses the inverse of (*AssemblyVariant).Serialize.
func DeserializeAssemblyVariant(n *sexpr.Node) (*AssemblyVariant, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	description, err := decodeStringAt(n, 2)
	if err != nil {
		return nil, err
	}
	return &AssemblyVariant{uuid: u, name: name, description: description}, nil
}

// Serialize renders o as a
// (assembly_option <uuid> <variant> <device> <mount>) list.
func (o *ComponentAssemblyOption) Serialize() *sexpr.Node {
	mount := "not_mounted"
	if o.mount {
		mount = "mounted"
	}
	return sexpr.NewList("assembly_option",
		encodeUuid(o.uuid), encodeUuid(o.variant), encodeUuid(o.deviceUuid), sexpr.NewToken(mount))
}

// DeserializeComponentAssemblyOption parses the inverse of
// (*ComponentAssemblyOption).Serialize.
func DeserializeComponentAssemblyOption(n *sexpr.Node) (*ComponentAssemblyOption, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	variant, err := decodeUuidAt(n, 1)
	if err != nil {
		return nil, err
	}
	deviceUuid, err := decodeUuidAt(n, 2)
	if err != nil {
		return nil, err
	}
	mountTok, err := decodeToken(n, 3)
	if err != nil {
		return nil, err
	}
	return &ComponentAssemblyOption{uuid: u, variant: variant, deviceUuid: deviceUuid, mount: mountTok == "mounted"}, nil
}

// Serialize renders r as a
// (resource <uuid> <name> <media_type> <reference>) list.
func (r *Resource) Serialize() *sexpr.Node {
	return sexpr.NewList("resource",
		encodeUuid(r.uuid), sexpr.NewString(r.name), sexpr.NewString(r.mediaType), sexpr.NewString(r.reference))
}

// DeserializeResource parses the inverse of (*Resource).Serialize.
func DeserializeResource(n *sexpr.Node) (*Resource, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	mediaType, err := decodeStringAt(n, 2)
	if err != nil {
		return nil, err
	}
	reference, err := decodeStringAt(n, 3)
	if err != nil {
		return nil, err
	}
	return &Resource{uuid: u, name: name, mediaType: mediaType, reference: reference}, nil
}

// Serialize renders m as a (package_model <uuid> <name>) list.
func (m *PackageModel) Serialize() *sexpr.Node {
	return sexpr.NewList("package_model", encodeUuid(m.uuid), sexpr.NewString(m.name))
}

// DeserializePackageModel parses the inverse of (*PackageModel).Serialize.
func DeserializePackageModel(n *sexpr.Node) (*PackageModel, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	return &PackageModel{uuid: u, name: name}, nil
}

// Serialize renders m as a (pad_signal_map <pad> <signal-or-none>) list.
func (m DevicePadSignalMapItem) Serialize() *sexpr.Node {
	signalTok := "none"
	if m.signalUuid != nil {
		signalTok = m.signalUuid.String()
	}
	return sexpr.NewList("pad_signal_map", encodeUuid(m.padUuid), sexpr.NewToken(signalTok))
}

// DeserializeDevicePadSignalMapItem parses the inverse of
// DevicePadSignalMapItem.Serialize.
func DeserializeDevicePadSignalMapItem(n *sexpr.Node) (DevicePadSignalMapItem, error) {
	padUuid, err := decodeUuidAt(n, 0)
	if err != nil {
		return DevicePadSignalMapItem{}, err
	}
	signalTok, err := decodeToken(n, 1)
	if err != nil {
		return DevicePadSignalMapItem{}, err
	}
	var signalUuid *Uuid
	if signalTok != "none" {
		s, err := ParseUuid(signalTok)
		if err != nil {
			return DevicePadSignalMapItem{}, err
		}
		signalUuid = &s
	}
	return DevicePadSignalMapItem{padUuid: padUuid, signalUuid: signalUuid}, nil
}

// Serialize renders t as a (tag <value>) list.
func (t Tag) Serialize() *sexpr.Node {
	return sexpr.NewList("tag", sexpr.NewString(t.value))
}

// DeserializeTag parses the inverse of Tag.Serialize.
func DeserializeTag(n *sexpr.Node) (Tag, error) {
	value, err := decodeStringAt(n, 0)
	if err != nil {
		return Tag{}, err
	}
	return NewTag(value), nil
}
