package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"naijaquest/internal/api"
	"naijaquest/internal/cli"
	"naijaquest/internal/engine"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptOptional(label string) (string, error) {
	fmt.Printf("%s: ", label)
	text, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	for {
		fmt.Printf("%s [%s] (default %s): ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return defaultValue, nil
		}
		for _, opt := range options {
			if strings.EqualFold(text, opt) {
				return opt, nil
			}
		}
		printWarn("Pick one of: " + strings.Join(options, ", "))
	}
}

func promptInt64(label string, min int64) (int64, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil || v < min {
			printWarn(fmt.Sprintf("Enter a number >= %d.", min))
			continue
		}
		return v, nil
	}
}

func renderStatus(view api.GameView) {
	p := view.Player
	st := view.State
	d := view.Derived

	accent.Printf("\n== MONTH %d | %s (%s) ==\n", st.Month, p.Name, p.Profession)
	fmt.Printf("Phase:             %s\n", phaseLabel(st.Phase))
	fmt.Printf("Cash:              %s\n", naira(p.Cash))
	fmt.Printf("Salary:            %s\n", naira(p.Salary))
	fmt.Printf("Passive Income:    %s\n", naira(d.PassiveIncome))
	fmt.Printf("Total Expenses:    %s\n", naira(d.TotalExpenses))
	fmt.Printf("Monthly Cash Flow: %s\n", colorizeNaira(d.MonthlyFlow))
	fmt.Printf("Net Worth:         %s\n", colorizeNaira(d.NetWorth))
	fmt.Printf("Exchange Rate:     ₦%s / $1\n", comma(st.ExchangeRate))
	fmt.Printf("Lifestyle:         %s\n", p.Lifestyle)
	fmt.Printf("Health %d  Mood %d  Social %d\n", p.Health, p.Mood, p.SocialCapital)

	fmt.Println()
	accent.Printf("Dream: %s (%s) — %d%% to freedom\n", p.Dream.Name, naira(p.Dream.Cost), d.Progress)
	if p.DreamOwned {
		printSuccess("Dream item owned.")
	}

	fmt.Println()
	accent.Println("Assets")
	if len(p.Assets) == 0 {
		printInfo("No assets yet.")
	} else {
		fmt.Printf("%-26s %-24s %-13s %5s %14s %14s\n", "ID", "NAME", "CATEGORY", "LVL", "COST", "FLOW")
		for _, a := range p.Assets {
			flow := naira(a.CashFlow)
			if a.Currency == engine.USD {
				flow = fmt.Sprintf("$%s", comma(a.CashFlow))
			}
			fmt.Printf("%-26s %-24s %-13s %2d/%2d %14s %14s\n",
				truncate(a.ID, 26),
				truncate(a.Name, 24),
				a.Category,
				a.Level, a.MaxLevel,
				naira(a.Cost),
				flow,
			)
		}
	}

	fmt.Println()
	accent.Println("Liabilities")
	if len(p.Liabilities) == 0 {
		printSuccess("Debt free.")
	} else {
		fmt.Printf("%-26s %-24s %-12s %14s %12s %5s\n", "ID", "NAME", "ORIGIN", "OWED", "MONTHLY", "TERM")
		for _, l := range p.Liabilities {
			term := "-"
			if l.TermRemaining > 0 {
				term = strconv.Itoa(l.TermRemaining)
			}
			fmt.Printf("%-26s %-24s %-12s %14s %12s %5s\n",
				truncate(l.ID, 26),
				truncate(l.Name, 24),
				l.Origin,
				naira(l.TotalOwed),
				naira(l.MonthlyPayment),
				term,
			)
		}
	}

	switch st.Phase {
	case engine.PhaseEventModal:
		if view.Event != nil {
			renderEvent(*view.Event)
		}
	case engine.PhaseInsolvency:
		renderInsolvency(view)
	case engine.PhaseVictory:
		fmt.Println()
		success.Println("*** FINANCIAL FREEDOM! Passive income covers your life. ***")
	case engine.PhaseGameOver:
		fmt.Println()
		danger.Println("*** GAME OVER ***")
	}
	fmt.Println()
}

func renderEvent(ev engine.GameEvent) {
	fmt.Println()
	accent.Printf("== EVENT: %s [%s] ==\n", ev.Title, ev.Type)
	fmt.Println(ev.Description)
	for _, c := range ev.Choices {
		fmt.Println()
		warn.Printf("  [%s] %s\n", c.ID, c.Label)
		if c.Description != "" {
			fmt.Printf("      %s\n", c.Description)
		}
		if c.Cost > 0 {
			fmt.Printf("      Cost: %s\n", naira(c.Cost))
		}
		if c.SuccessChance > 0 {
			fmt.Printf("      Success chance: %.0f%%\n", c.SuccessChance*100)
		}
	}
	fmt.Println()
	printInfo("Resolve with: naija event <choice-id>")
}

func renderInsolvency(view api.GameView) {
	fmt.Println()
	danger.Printf("== INSOLVENT: short %s this month ==\n", naira(view.State.Deficit))
	fmt.Printf("Shark offer:    up to %s (suggested %s)\n", naira(view.Derived.SharkOffer), naira(view.Derived.SuggestedShark))
	fmt.Println("Ways out: shark_loan, distress_sell, beg, defer_loans, menial_labor, default")
	printInfo("Resolve with: naija insolvency <strategy>")
}

func renderLog(view api.GameView, n int) {
	accent.Println("\n== STORY SO FAR ==")
	entries := view.State.Log
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	if len(entries) == 0 {
		printInfo("Nothing has happened yet.")
	}
	for _, line := range entries {
		fmt.Println("  " + line)
	}
	fmt.Println()
}

func renderArchetypes(list []engine.Archetype) {
	accent.Println("\n== WHO ARE YOU? ==")
	fmt.Printf("%-14s %-22s %-12s %12s %12s %10s\n", "ID", "NAME", "DIFFICULTY", "SALARY", "SAVINGS", "SOCIAL")
	for _, a := range list {
		fmt.Printf("%-14s %-22s %-12s %12s %12s %10d\n",
			a.ID, truncate(a.Name, 22), a.Difficulty, naira(a.Salary), naira(a.Savings), a.StartingSocial)
	}
	fmt.Println()
}

func renderDreams(list []engine.DreamItem) {
	accent.Println("\n== WHAT DO YOU DREAM OF? ==")
	fmt.Printf("%-14s %-28s %14s\n", "ID", "NAME", "COST")
	for _, d := range list {
		fmt.Printf("%-14s %-28s %14s\n", d.ID, truncate(d.Name, 28), naira(d.Cost))
	}
	fmt.Println()
}

func renderMarket(list []engine.MarketItem) {
	accent.Println("\n== THE MARKET ==")
	fmt.Printf("%-14s %-26s %-13s %-7s %14s %12s %6s\n", "ID", "NAME", "CATEGORY", "TIER", "COST", "FLOW", "RISK")
	for _, m := range list {
		flow := naira(m.CashFlow)
		if m.Currency == engine.USD {
			flow = fmt.Sprintf("$%s", comma(m.CashFlow))
		}
		risk := "-"
		if m.Risk > 0 {
			risk = fmt.Sprintf("%.0f%%", m.Risk*100)
		}
		fmt.Printf("%-14s %-26s %-13s %-7s %14s %12s %6s\n",
			m.ID, truncate(m.Name, 26), m.Category, m.Tier, naira(m.Cost), flow, risk)
		if m.RequiresSkill != "" {
			fmt.Printf("%-14s requires skill %s\n", "", m.RequiresSkill)
		}
	}
	fmt.Println()
}

func renderSkills(list []engine.Skill, p engine.Player) {
	accent.Println("\n== SKILLS ==")
	fmt.Printf("%-14s %-24s %14s %14s %-8s\n", "ID", "NAME", "COST", "GIG BONUS", "LEARNED")
	for _, s := range list {
		learned := "no"
		if p.HasSkill(s.ID) {
			learned = "yes"
		}
		fmt.Printf("%-14s %-24s %14s %14s %-8s\n", s.ID, truncate(s.Name, 24), naira(s.Cost), naira(s.GigBonus), learned)
	}
	fmt.Println()
}

func renderLeaderboard(out cli.LeaderboardView) {
	accent.Println("\n== HALL OF FREEDOM ==")
	if !out.Enabled {
		printInfo("Leaderboard is not enabled on this server.")
		return
	}
	if len(out.Rows) == 0 {
		printInfo("Nobody has made it out yet.")
		return
	}
	fmt.Printf("%-6s %-20s %-26s %8s %16s\n", "RANK", "PLAYER", "DREAM", "MONTHS", "NET WORTH")
	for _, row := range out.Rows {
		fmt.Printf("%-6d %-20s %-26s %8d %16s\n",
			row.Rank, truncate(row.PlayerName, 20), truncate(row.Dream, 26), row.Months, naira(row.NetWorth))
	}
	fmt.Println()
}

func phaseLabel(p engine.Phase) string {
	switch p {
	case engine.PhasePlaying:
		return "playing"
	case engine.PhaseEventModal:
		return "event waiting"
	case engine.PhaseInsolvency:
		return danger.Sprint("insolvent")
	case engine.PhaseVictory:
		return success.Sprint("victory")
	case engine.PhaseGameOver:
		return danger.Sprint("game over")
	default:
		return string(p)
	}
}

func naira(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "₦" + comma(v)
}

func colorizeNaira(v int64) string {
	text := naira(v)
	if v > 0 {
		text = "+" + text
	}
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func comma(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
