package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/model"
)

func printBoundaries(encs []model.Encounter) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Start\tEnd\tLines\tDurationSec")
	for _, enc := range encs {
		fmt.Fprintf(w, "%s\t%s\t%d-%d\t%d\n",
			enc.Start.Format(time.RFC3339),
			enc.End.Format(time.RFC3339),
			enc.StartLine,
			enc.EndLine,
			enc.DurationSeconds(),
		)
	}
	_ = w.Flush()
}

func printReport(rep *engine.Report) {
	fmt.Fprintf(os.Stdout, "Instance: %s\nBoss: %s\nParty: %d members\n\n", rep.Instance, rep.Boss, len(rep.Party))

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "#\tBoss\tStart\tEnd\tType\tDurationSec\tBossHP%")
	for i := range rep.Encounters {
		enc := &rep.Encounters[i].Encounter
		hp := "-"
		if enc.HPObserved {
			hp = fmt.Sprintf("%.1f", enc.LowestBossHPPct)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			i+1,
			enc.Boss,
			enc.Start.Format(time.RFC3339),
			enc.End.Format(time.RFC3339),
			enc.Termination,
			enc.DurationSeconds(),
			hp,
		)
	}
	_ = w.Flush()

	for i := range rep.Encounters {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "Encounter %d\n", i+1)
		printEncounterReport(&rep.Encounters[i])
	}
}

func printEncounterReport(er *engine.EncounterReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Actor\tClass\tJob\tRole\tDealt\tTaken\tHits\tDPS")

	rows := make([]*model.ActorInfo, 0, len(er.Roster.Party)+len(er.Roster.Adds)+1)
	if er.Roster.Boss != nil {
		rows = append(rows, er.Roster.Boss)
	}
	rows = append(rows, er.Roster.Party...)
	rows = append(rows, er.Roster.Adds...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DamageDealt > rows[j].DamageDealt
	})

	for _, a := range rows {
		dps := 0.0
		if m, ok := er.Metrics[a.Name]; ok {
			dps = m.DPS
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%.1f\n",
			a.Name, a.Class, a.Job, a.Role, a.DamageDealt, a.DamageTaken, a.HitCount, dps)
	}
	_ = w.Flush()
}

func printEvents(er *engine.EncounterReport, limit int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Ts\tAttacker\tTarget\tSkill\tAmount\tCrit\tDH")
	n := len(er.Events)
	if limit > 0 && n > limit {
		n = limit
	}
	for _, ev := range er.Events[:n] {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%v\t%v\n",
			ev.Ts.Format(time.RFC3339), ev.Attacker, ev.Target, ev.Skill, ev.Amount, ev.Crit, ev.DirectHit)
	}
	_ = w.Flush()
}
