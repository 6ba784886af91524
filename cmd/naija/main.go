package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"naijaquest/internal/api"
	cl "naijaquest/internal/cli"
	"naijaquest/internal/config"
	"naijaquest/internal/engine"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "naija",
		Short:        "Lagos-to-freedom financial survival game",
		SilenceUsage: true,
	}

	root.AddCommand(
		newNewCmd(&apiBase),
		newStatusCmd(&apiBase),
		newAdvanceCmd(&apiBase),
		newEventCmd(&apiBase),
		newInsolvencyCmd(&apiBase),
		newMarketCmd(&apiBase),
		newUpgradeCmd(&apiBase),
		newSellCmd(&apiBase),
		newBankCmd(&apiBase),
		newSharkCmd(&apiBase),
		newRepayCmd(&apiBase),
		newLifestyleCmd(&apiBase),
		newSkillCmd(&apiBase),
		newGigCmd(&apiBase),
		newDreamCmd(&apiBase),
		newAusterityCmd(&apiBase),
		newLogCmd(&apiBase),
		newLeaderboardCmd(&apiBase),
		newWatchCmd(&apiBase),
		newAbandonCmd(&apiBase),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

// gameAction loads the session, runs one API call, caches the returned
// snapshot, and renders it. Every in-game command funnels through here.
func gameAction(cmd *cobra.Command, apiBase *string, fn func(ctx context.Context, client *cl.Client, gameID string) (api.GameView, error)) error {
	sess, err := cl.LoadSession()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	view, err := fn(ctx, newClient(apiBase), sess.GameID)
	if err != nil {
		return err
	}
	if err := cl.SaveSnapshot(view); err != nil {
		printWarn(fmt.Sprintf("Could not cache snapshot: %v", err))
	}
	renderStatus(view)
	return nil
}

func newNewCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new run",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			client := newClient(apiBase)

			catalog, err := client.Catalog(ctx)
			if err != nil {
				return err
			}

			renderArchetypes(catalog.Archetypes)
			archetypeID, err := promptRequired("Archetype id")
			if err != nil {
				return err
			}
			renderDreams(catalog.Dreams)
			dreamID, err := promptRequired("Dream id")
			if err != nil {
				return err
			}
			name, err := promptOptional("Your name (optional)")
			if err != nil {
				return err
			}

			view, err := client.NewGame(ctx, archetypeID, dreamID, name)
			if err != nil {
				return err
			}
			if err := cl.SaveSession(cl.Session{
				GameID:     view.ID,
				PlayerName: view.Player.Name,
				BaseURL:    client.BaseURL,
			}); err != nil {
				return err
			}
			if err := cl.SaveSnapshot(view); err != nil {
				printWarn(fmt.Sprintf("Could not cache snapshot: %v", err))
			}
			printSuccess("New run started. Good luck out there.")
			renderStatus(view)
			return nil
		},
	}
}

func newStatusCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current month's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cl.LoadSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			view, err := newClient(apiBase).Game(ctx, sess.GameID)
			if err != nil {
				cached, cacheErr := cl.LoadSnapshot(sess.GameID)
				if cacheErr != nil {
					return err
				}
				printWarn(fmt.Sprintf("Server unreachable (%v), showing cached state.", err))
				renderStatus(cached)
				return nil
			}
			if err := cl.SaveSnapshot(view); err != nil {
				printWarn(fmt.Sprintf("Could not cache snapshot: %v", err))
			}
			renderStatus(view)
			return nil
		},
	}
}

func newAdvanceCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:     "advance",
		Aliases: []string{"next"},
		Short:   "Live through the next month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.Advance(ctx, id)
			})
		},
	}
}

func newEventCmd(apiBase *string) *cobra.Command {
	var finance bool
	cmd := &cobra.Command{
		Use:   "event [choice-id]",
		Short: "Resolve the waiting event",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choiceID := ""
			if len(args) == 1 {
				choiceID = strings.TrimSpace(args[0])
			}
			if choiceID == "" {
				var err error
				choiceID, err = promptRequired("Choice id")
				if err != nil {
					return err
				}
			}
			method := "cash"
			if finance {
				method = "bank"
			}
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.ResolveEvent(ctx, id, choiceID, method)
			})
		},
	}
	cmd.Flags().BoolVar(&finance, "finance", false, "pay the choice's cost with bank financing")
	return cmd
}

func newInsolvencyCmd(apiBase *string) *cobra.Command {
	var amount int64
	var assetID string
	cmd := &cobra.Command{
		Use:   "insolvency <strategy>",
		Short: "Dig yourself out of a cash shortfall",
		Long:  "Strategies: shark_loan, distress_sell, beg, defer_loans, menial_labor, default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy := strings.ToLower(strings.TrimSpace(args[0]))
			if strategy == string(engine.StrategyDistressSell) && assetID == "" {
				var err error
				assetID, err = promptRequired("Asset id to sell")
				if err != nil {
					return err
				}
			}
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.ResolveInsolvency(ctx, id, strategy, amount, assetID)
			})
		},
	}
	cmd.Flags().Int64Var(&amount, "amount", 0, "shark loan amount (0 takes the suggested amount)")
	cmd.Flags().StringVar(&assetID, "asset", "", "asset to distress-sell")
	return cmd
}

func newMarketCmd(apiBase *string) *cobra.Command {
	market := &cobra.Command{
		Use:     "market",
		Short:   "Browse and buy income-producing assets",
		Aliases: []string{"shop"},
	}
	market.AddCommand(newMarketListCmd(apiBase))
	market.AddCommand(newMarketBuyCmd(apiBase))
	return market
}

func newMarketListCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List everything for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			catalog, err := newClient(apiBase).Catalog(ctx)
			if err != nil {
				return err
			}
			renderMarket(catalog.Items)
			return nil
		},
	}
}

func newMarketBuyCmd(apiBase *string) *cobra.Command {
	var finance bool
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a market item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := strings.TrimSpace(args[0])
			method := "cash"
			if finance {
				method = "bank"
			}
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.BuyItem(ctx, id, itemID, method)
			})
		},
	}
	cmd.Flags().BoolVar(&finance, "finance", false, "finance the purchase through the bank")
	return cmd
}

func newUpgradeCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <asset-id>",
		Short: "Upgrade an owned asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID := strings.TrimSpace(args[0])
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.UpgradeAsset(ctx, id, assetID)
			})
		},
	}
}

func newSellCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <asset-id>",
		Short: "Sell an owned asset at full value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID := strings.TrimSpace(args[0])
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.SellAsset(ctx, id, assetID)
			})
		},
	}
}

func newBankCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bank [amount]",
		Short: "Take a bank loan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromArgsOrPrompt(args, "Loan amount (₦)")
			if err != nil {
				return err
			}
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.BankLoan(ctx, id, amount)
			})
		},
	}
}

func newSharkCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "shark [amount]",
		Short: "Borrow from the loan shark (40% flat, 4 months)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromArgsOrPrompt(args, "Loan amount (₦)")
			if err != nil {
				return err
			}
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.SharkLoan(ctx, id, amount)
			})
		},
	}
}

func newRepayCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repay <liability-id>",
		Short: "Pay off a debt in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			liabilityID := strings.TrimSpace(args[0])
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.Repay(ctx, id, liabilityID)
			})
		},
	}
}

func newLifestyleCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lifestyle <Low|Middle|High>",
		Short: "Move to a different lifestyle tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := normalizeTier(args[0])
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.Lifestyle(ctx, id, tier)
			})
		},
	}
}

func newSkillCmd(apiBase *string) *cobra.Command {
	skill := &cobra.Command{
		Use:   "skill",
		Short: "Learn skills that raise your gig pay",
	}
	skill.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			client := newClient(apiBase)
			catalog, err := client.Catalog(ctx)
			if err != nil {
				return err
			}
			var player engine.Player
			if sess, err := cl.LoadSession(); err == nil {
				if view, err := client.Game(ctx, sess.GameID); err == nil {
					player = view.Player
				}
			}
			renderSkills(catalog.Skills, player)
			return nil
		},
	})
	skill.AddCommand(&cobra.Command{
		Use:   "learn <skill-id>",
		Short: "Pay for a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skillID := strings.TrimSpace(args[0])
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.LearnSkill(ctx, id, skillID)
			})
		},
	})
	return skill
}

func newGigCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "gig",
		Short: "Hustle for extra cash this month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.Gig(ctx, id)
			})
		},
	}
}

func newDreamCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dream",
		Short: "Buy your dream item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.BuyDream(ctx, id)
			})
		},
	}
}

func newAusterityCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "austerity",
		Short: "Slash discretionary spending for the lean months",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gameAction(cmd, apiBase, func(ctx context.Context, client *cl.Client, id string) (api.GameView, error) {
				return client.Austerity(ctx, id)
			})
		},
	}
}

func newLogCmd(apiBase *string) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the narrative log, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cl.LoadSession()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			view, err := newClient(apiBase).Game(ctx, sess.GameID)
			if err != nil {
				return err
			}
			renderLog(view, n)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 20, "number of entries to show (0 for all)")
	return cmd
}

func newLeaderboardCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Show the fastest escapes to financial freedom",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			out, err := newClient(apiBase).Leaderboard(ctx)
			if err != nil {
				return err
			}
			renderLeaderboard(out)
			return nil
		},
	}
}

func newWatchCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream the game state live as moves are made",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cl.LoadSession()
			if err != nil {
				return err
			}
			client := newClient(apiBase)
			conn, _, err := websocket.DefaultDialer.DialContext(cmd.Context(), client.WatchURL(sess.GameID), nil)
			if err != nil {
				return fmt.Errorf("connect to game stream: %w", err)
			}
			defer conn.Close()

			printInfo("Watching... Ctrl+C to stop.")
			for {
				var view api.GameView
				if err := conn.ReadJSON(&view); err != nil {
					if cmd.Context().Err() != nil {
						return nil
					}
					return fmt.Errorf("stream closed: %w", err)
				}
				renderStatus(view)
				if view.State.Phase == engine.PhaseVictory || view.State.Phase == engine.PhaseGameOver {
					return nil
				}
			}
		},
	}
}

func newAbandonCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Walk away from the current run",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cl.LoadSession()
			if err != nil {
				return err
			}
			confirm, err := promptChoice("Abandon this run?", []string{"yes", "no"}, "no")
			if err != nil {
				return err
			}
			if confirm != "yes" {
				printInfo("Kept the run.")
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := newClient(apiBase).Abandon(ctx, sess.GameID); err != nil {
				printWarn(fmt.Sprintf("Server delete failed: %v", err))
			}
			_ = cl.RemoveSnapshot(sess.GameID)
			if err := cl.ClearSession(); err != nil {
				return err
			}
			printSuccess("Run abandoned.")
			return nil
		},
	}
}

func normalizeTier(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return string(engine.TierLow)
	case "middle", "mid":
		return string(engine.TierMiddle)
	case "high":
		return string(engine.TierHigh)
	default:
		return strings.TrimSpace(raw)
	}
}

func amountFromArgsOrPrompt(args []string, label string) (int64, error) {
	if len(args) == 1 {
		v, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("invalid amount %q", args[0])
		}
		return v, nil
	}
	return promptInt64(label, 1)
}
