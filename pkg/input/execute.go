package input

// execute runs a bound action against compositor state. Nothing here waits
// on clients or spawned processes.
func (d *Dispatcher) execute(seat *Seat, a Action) {
	recordAction(a)
	d.log.Debugw("executing action", "seat", seat.name, "action", a)

	switch a.Kind {
	case ActionTerminate:
		d.shouldStop = true
	case ActionToggleDebug:
		if len(d.opts.Interceptors) == 0 {
			d.log.Info("debug overlay not included in this build")
			break
		}
		d.overlayActive = !d.overlayActive
	case ActionSpawn:
		d.spawn(a.Command)
	default:
		d.executeOnOutput(seat, a)
	}

	if d.opts.OnAction != nil {
		d.opts.OnAction(seat, a)
	}
}

func (d *Dispatcher) executeOnOutput(seat *Seat, a Action) {
	shell := d.opts.Shell
	output := seat.ActiveOutput(shell.Outputs())
	if output == nil {
		d.log.Warnw("no output for action", "seat", seat.name, "action", a)
		return
	}

	switch a.Kind {
	case ActionCloseFocused:
		ws := shell.ActiveWorkspace(output)
		if ws == nil {
			return
		}
		if stack := ws.FocusStack(seat); len(stack) > 0 {
			stack[len(stack)-1].Close()
		}
	case ActionSwitchWorkspace:
		shell.Activate(seat, output, workspaceIndex(a.Workspace))
	case ActionMoveWindowToWorkspace:
		shell.MoveCurrentWindow(seat, output, workspaceIndex(a.Workspace))
	case ActionMoveFocus:
		shell.MoveFocus(seat, output, a.Direction, d.seats)
	case ActionSetOrientation:
		shell.SetOrientation(seat, output, a.Orientation)
	default:
		d.log.Warnw("unknown action", "action", a)
	}
}

func (d *Dispatcher) spawn(command string) {
	if d.opts.Spawner == nil {
		d.log.Warnw("no spawner configured", "command", command)
		return
	}

	err := d.opts.Spawner.Spawn(command, map[string]string{"WAYLAND_DISPLAY": d.opts.Socket})
	if err != nil {
		recordSpawnFailure()
		d.log.Warnw("failed to spawn", "command", command, "error", err)
	}
}
