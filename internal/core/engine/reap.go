package engine

import (
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// reap stops pid and every process below it. The tree is collected before anything
// is signalled so children cannot escape by being reparented. Survivors of the
// terminate signal are killed after grace. Returns how many processes were signalled
func reap(pid int32, grace time.Duration) int {
	root, err := process.NewProcess(pid)
	if err != nil {
		killGroup(int(pid))
		return 0
	}

	tree := append(descendants(root), root)
	n := 0
	for _, p := range tree {
		if p.Terminate() == nil {
			n++
		}
	}

	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) && anyRunning(tree) {
		time.Sleep(20 * time.Millisecond)
	}
	for _, p := range tree {
		if running(p) {
			_ = p.Kill()
		}
	}
	killGroup(int(pid))
	return n
}

func descendants(p *process.Process) []*process.Process {
	kids, err := p.Children()
	if err != nil {
		return nil
	}
	out := make([]*process.Process, 0, len(kids))
	for _, k := range kids {
		out = append(out, descendants(k)...)
		out = append(out, k)
	}
	return out
}

func anyRunning(ps []*process.Process) bool {
	for _, p := range ps {
		if running(p) {
			return true
		}
	}
	return false
}

// running treats zombies as gone; they only wait for their parent to collect them
func running(p *process.Process) bool {
	ok, err := p.IsRunning()
	if err != nil || !ok {
		return false
	}
	st, err := p.Status()
	if err != nil {
		return true
	}
	for _, s := range st {
		if s == process.Zombie {
			return false
		}
	}
	return true
}
