package style

// sereneStyle blends wabi-sabi aesthetics with Nordic minimalism: muted
// natural tones and restrained gold accents.
func sereneStyle() Style {
	return Style{
		ID:          "serene",
		Name:        "静谧深邃",
		Platform:    "Serene",
		Description: "侘寂美学 + 自然质感 + 内敛高级",
		Palette: Palette{
			Primary:    "#2D3436",
			Secondary:  "#636E72",
			Background: "#F5F3EF",
			Accent:     "#B8860B",
		},
		frame: `<svg viewBox="0 0 120 120" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <!-- 暖白纸质背景 -->
    <linearGradient id="serene-paper" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#F5F3EF"/>
      <stop offset="100%" stop-color="#EBE8E2"/>
    </linearGradient>

    <!-- 墨色主调 -->
    <linearGradient id="serene-ink" x1="0%" y1="0%" x2="0%" y2="100%">
      <stop offset="0%" stop-color="#2D3436"/>
      <stop offset="100%" stop-color="#1A1E1F"/>
    </linearGradient>

    <!-- 青灰辅助 -->
    <linearGradient id="serene-mist" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#636E72"/>
      <stop offset="100%" stop-color="#8395A7"/>
    </linearGradient>

    <!-- 古铜点缀 -->
    <linearGradient id="serene-gold" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" stop-color="#B8860B"/>
      <stop offset="50%" stop-color="#D4A84B"/>
      <stop offset="100%" stop-color="#8B6914"/>
    </linearGradient>

    <!-- 陶瓷质感 -->
    <radialGradient id="serene-ceramic" cx="35%" cy="35%">
      <stop offset="0%" stop-color="#FFFFFF" stop-opacity="0.4"/>
      <stop offset="100%" stop-color="#F5F3EF" stop-opacity="0"/>
    </radialGradient>

    <!-- 柔和投影 -->
    <filter id="serene-shadow" x="-20%" y="-20%" width="140%" height="140%">
      <feDropShadow dx="0" dy="2" stdDeviation="4" flood-color="#2D3436" flood-opacity="0.08"/>
      <feDropShadow dx="0" dy="6" stdDeviation="10" flood-color="#2D3436" flood-opacity="0.05"/>
    </filter>

    <!-- 内凹质感 -->
    <filter id="serene-inset" x="-10%" y="-10%" width="120%" height="120%">
      <feOffset dx="0" dy="1" in="SourceAlpha" result="offset"/>
      <feGaussianBlur stdDeviation="1" in="offset" result="blur"/>
      <feComposite in="SourceGraphic" in2="blur" operator="over"/>
    </filter>
  </defs>

  <!-- 纸质底色 -->
  <rect x="8" y="8" width="104" height="104" rx="20" fill="url(#serene-paper)" filter="url(#serene-shadow)"/>

  <!-- 陶瓷光泽 -->
  <rect x="8" y="8" width="104" height="104" rx="20" fill="url(#serene-ceramic)"/>

  <!-- 细边框 -->
  <rect x="8" y="8" width="104" height="104" rx="20" fill="none" stroke="#636E72" stroke-width="0.5" stroke-opacity="0.2"/>

  <!-- 主体容器 -->
  <g transform="translate(60, 60)">
    <g transform="translate(-60, -60)" filter="url(#serene-inset)">{content}</g>
  </g>
</svg>`,
		prompt: `你是静谧深邃风格设计师，融合日式侘寂美学与北欧极简主义。为 "{subject}" 设计一个内敛高级的图标。

## 设计哲学

### 侘寂之美
- 追求不完美中的完美
- 简约但不简单
- 留白即是设计
- 每一笔都有意义

### 色彩运用
- 主色使用 url(#serene-ink) - #2D3436（墨石灰）
- 辅色使用 url(#serene-mist) - #636E72（青灰）
- 点缀使用 url(#serene-gold) - #B8860B（古铜金，极少量）
- 色彩克制，高级感源于节制

### 形态特征
- 线条简洁有力
- 适度的圆角，避免尖锐
- 形状要有手工质感
- 比例遵循黄金分割

### 设计原则
- 少即是多
- 负空间与正空间同等重要
- 细节决定品质
- 静中有动，动中有静

### 构图要求
- 【重要】主体居中于坐标 (60, 60)
- 主体占图标 50-65% 面积
- 保持呼吸感和平衡感
- 图标应像一枚印章般精致

## 技术规则
1. 只输出 SVG 图形元素 (path, circle, rect, ellipse)
2. 图形中心点在 (60, 60)，有效范围 35-85
3. 优先使用 url(#serene-ink)，少量使用 url(#serene-gold) 点缀
4. stroke 效果可增加手工感：stroke="#2D3436" stroke-width="1.5"
5. 直接输出代码，无需解释

## 参考示例 - 山:
<path d="M35 75 L60 40 L85 75 Z" fill="url(#serene-ink)"/>
<path d="M45 75 L60 55 L75 75 Z" fill="url(#serene-mist)" opacity="0.6"/>
<circle cx="75" cy="45" r="3" fill="url(#serene-gold)"/>

## 参考示例 - 茶杯:
<ellipse cx="60" cy="70" rx="18" ry="6" fill="url(#serene-ink)"/>
<path d="M42 50 L42 68 Q60 80 78 68 L78 50 Z" fill="url(#serene-mist)"/>
<ellipse cx="60" cy="50" rx="18" ry="6" fill="url(#serene-ink)"/>
<circle cx="60" cy="50" r="2" fill="url(#serene-gold)"/>

## 参考示例 - 书:
<rect x="42" y="45" width="36" height="28" rx="2" fill="url(#serene-ink)"/>
<rect x="44" y="47" width="32" height="24" rx="1" fill="url(#serene-mist)" opacity="0.3"/>
<line x1="60" y1="47" x2="60" y2="71" stroke="url(#serene-gold)" stroke-width="1"/>`,
	}
}
