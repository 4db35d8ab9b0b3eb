package wayland

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Fixed object IDs we assign (client range: 2–0xfeffffff).
const (
	idDisplay   uint32 = 1
	idRegistry  uint32 = 2
	idCallback1 uint32 = 3 // first sync
	idSeat      uint32 = 4
	idDCManager uint32 = 5 // zwlr_data_control_manager_v1
	idDCSource  uint32 = 6 // zwlr_data_control_source_v1
	idDCDevice  uint32 = 7 // zwlr_data_control_device_v1
	idCallback2 uint32 = 8 // second sync
)

// Serve claims the Wayland clipboard and blocks until ownership is
// cancelled by another clipboard write. Each offered MIME type is served
// on demand by writing its bytes to the fd the compositor hands over.
func Serve(formats map[string][]byte) error {
	runtime := os.Getenv("XDG_RUNTIME_DIR")
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	if runtime == "" {
		return fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}

	c, err := dial(filepath.Join(runtime, display))
	if err != nil {
		return fmt.Errorf("wayland: connect %s: %w", filepath.Join(runtime, display), err)
	}
	defer c.close()

	seatName, dcManagerName, err := discoverGlobals(c)
	if err != nil {
		return err
	}
	if err := claimSelection(c, seatName, dcManagerName, formats); err != nil {
		return err
	}

	// Event loop: answer paste requests until ownership is cancelled.
	for {
		objectID, opcode, payload, fd, err := c.recv()
		if err != nil {
			// Connection closed means the compositor exited; treat as done.
			return nil
		}

		if objectID != idDCSource {
			if fd >= 0 {
				syscall.Close(fd) //nolint:errcheck
			}
			continue
		}

		switch opcode {
		case 0: // zwlr_data_control_source_v1.send
			mimeType, _, _ := parseString(payload)
			if fd >= 0 {
				if data, ok := formats[mimeType]; ok {
					syscall.Write(fd, data) //nolint:errcheck
				}
				syscall.Close(fd) //nolint:errcheck
			}
		case 1: // zwlr_data_control_source_v1.cancelled
			return nil
		}
	}
}

// discoverGlobals requests the registry and collects the wl_seat and
// data-control-manager global names, synchronizing on a display sync.
func discoverGlobals(c *conn) (seatName, dcManagerName uint32, err error) {
	if err = c.send(idDisplay, 1 /*get_registry*/, uint32Arg(idRegistry)); err != nil {
		return
	}
	if err = c.send(idDisplay, 0 /*sync*/, uint32Arg(idCallback1)); err != nil {
		return
	}

	var seatFound, dcManagerFound bool
	for {
		objectID, opcode, payload, fd, recvErr := c.recv()
		if recvErr != nil {
			err = recvErr
			return
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}

		switch {
		case objectID == idRegistry && opcode == 0 /*global*/:
			if len(payload) < 4 {
				continue
			}
			name := le.Uint32(payload[:4])
			iface, _, decErr := parseString(payload[4:])
			if decErr != nil {
				continue
			}
			switch iface {
			case "wl_seat":
				seatName = name
				seatFound = true
			case "zwlr_data_control_manager_v1":
				dcManagerName = name
				dcManagerFound = true
			}

		case objectID == idCallback1 && opcode == 0 /*done*/:
			if !seatFound {
				err = fmt.Errorf("wayland: wl_seat not found")
				return
			}
			if !dcManagerFound {
				err = fmt.Errorf("wayland: zwlr_data_control_manager_v1 not found (compositor may not support wlr-data-control)")
				return
			}
			return
		}
	}
}

// claimSelection binds the globals, creates a data source offering every
// format, and sets it as the selection, synchronizing before returning.
func claimSelection(c *conn, seatName, dcManagerName uint32, formats map[string][]byte) error {
	// wl_registry.bind new_id encodes inline: [name][interface string][version][new_id]
	if err := c.send(idRegistry, 0 /*bind*/,
		uint32Arg(seatName), stringArg("wl_seat"), uint32Arg(1), uint32Arg(idSeat)); err != nil {
		return err
	}
	if err := c.send(idRegistry, 0 /*bind*/,
		uint32Arg(dcManagerName), stringArg("zwlr_data_control_manager_v1"), uint32Arg(2), uint32Arg(idDCManager)); err != nil {
		return err
	}

	if err := c.send(idDCManager, 0 /*create_data_source*/, uint32Arg(idDCSource)); err != nil {
		return err
	}
	for mimeType := range formats {
		if err := c.send(idDCSource, 0 /*offer*/, stringArg(mimeType)); err != nil {
			return err
		}
	}

	if err := c.send(idDCManager, 1 /*get_data_device*/, uint32Arg(idDCDevice), uint32Arg(idSeat)); err != nil {
		return err
	}
	if err := c.send(idDCDevice, 0 /*set_selection*/, uint32Arg(idDCSource)); err != nil {
		return err
	}

	if err := c.send(idDisplay, 0 /*sync*/, uint32Arg(idCallback2)); err != nil {
		return err
	}
	for {
		objectID, opcode, _, fd, err := c.recv()
		if err != nil {
			return err
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}
		if objectID == idCallback2 && opcode == 0 /*done*/ {
			return nil
		}
	}
}
